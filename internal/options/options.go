// Package options implements the generic functional-options machinery
// backing block.BuilderOption: a RowBuilder or ColumnarBuilder is
// constructed with zero or more Option[*builderConfig] values, each one
// mutating the builder's config (currently just its chosen variable-region
// compression) before the first row or column is written.
package options

// Option configures a target of type T, returning an error if the
// configuration is invalid for that target. block.BuilderOption is
// Option[*builderConfig].
type Option[T any] interface {
	apply(T) error
}

// Func wraps a plain function as an Option.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New wraps a fallible configuration function as an Option. No current
// BuilderOption needs this (compression selection can't fail), but the
// builder config may grow options that do.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// Apply runs every opt against target in order, stopping at the first
// error. Called once by a builder's constructor, before any cell is
// written.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError wraps an infallible configuration function as an Option. Every
// BuilderOption in block/options.go is built this way today.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}
