package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeBuilderConfig mirrors block's builderConfig shape closely enough to
// exercise Option/Apply the way block/options.go actually does: one
// infallible field (compression) and one fallible setter for the error
// path block doesn't currently need but Apply must still support.
type fakeBuilderConfig struct {
	compression string
	maxRows     int
	lastCall    string
}

func (c *fakeBuilderConfig) setMaxRows(n int) error {
	if n < 0 {
		return errors.New("max rows cannot be negative")
	}
	c.maxRows = n
	c.lastCall = "setMaxRows"

	return nil
}

func (c *fakeBuilderConfig) setCompression(name string) {
	c.compression = name
	c.lastCall = "setCompression"
}

func TestNew_WrapsFallibleFunc(t *testing.T) {
	cfg := &fakeBuilderConfig{}

	t.Run("success", func(t *testing.T) {
		opt := New(func(c *fakeBuilderConfig) error { return c.setMaxRows(42) })

		require.NoError(t, opt.apply(cfg))
		require.Equal(t, 42, cfg.maxRows)
		require.Equal(t, "setMaxRows", cfg.lastCall)
	})

	t.Run("propagates the error", func(t *testing.T) {
		opt := New(func(c *fakeBuilderConfig) error { return c.setMaxRows(-1) })

		err := opt.apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "negative")
	})
}

func TestNoError_WrapsInfallibleFunc(t *testing.T) {
	cfg := &fakeBuilderConfig{}

	opt := NoError(func(c *fakeBuilderConfig) { c.setCompression("zstd") })

	require.NoError(t, opt.apply(cfg))
	require.Equal(t, "zstd", cfg.compression)
	require.Equal(t, "setCompression", cfg.lastCall)
}

func TestApply_RunsOptionsInOrder(t *testing.T) {
	cfg := &fakeBuilderConfig{}

	opts := []Option[*fakeBuilderConfig]{
		New(func(c *fakeBuilderConfig) error { return c.setMaxRows(10) }),
		NoError(func(c *fakeBuilderConfig) { c.setCompression("s2") }),
	}

	require.NoError(t, Apply(cfg, opts...))
	require.Equal(t, 10, cfg.maxRows)
	require.Equal(t, "s2", cfg.compression)
	require.Equal(t, "setCompression", cfg.lastCall, "Apply must run options in the given order")
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &fakeBuilderConfig{}

	opts := []Option[*fakeBuilderConfig]{
		New(func(c *fakeBuilderConfig) error { return c.setMaxRows(5) }),
		New(func(c *fakeBuilderConfig) error { return c.setMaxRows(-1) }),
		NoError(func(c *fakeBuilderConfig) { c.setCompression("should not run") }),
	}

	err := Apply(cfg, opts...)
	require.Error(t, err)
	require.Equal(t, 5, cfg.maxRows, "the option applied before the error must take effect")
	require.Empty(t, cfg.compression, "options after the error must not run")
}

func TestApply_EmptyOptionsIsNoop(t *testing.T) {
	cfg := &fakeBuilderConfig{}

	require.NoError(t, Apply(cfg))
	require.Equal(t, fakeBuilderConfig{}, *cfg)
}

// TestGenerics_WorkWithAnyTargetType checks Option[T]/Apply aren't
// accidentally coupled to struct pointers, since block's builderConfig is
// just one instantiation of T.
func TestGenerics_WorkWithAnyTargetType(t *testing.T) {
	var n int

	opt := NoError(func(p *int) { *p = 7 })
	require.NoError(t, opt.apply(&n))
	require.Equal(t, 7, n)
}
