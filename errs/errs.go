// Package errs defines the sentinel errors returned by the datablock encoder.
//
// Callers should use errors.Is against these sentinels rather than comparing
// error strings; every returned error is one of these or wraps one with %w.
// Errors about a single schema column name it, and ErrUnsupportedType and
// ErrTypeMismatch from the dispatcher also give its type. ErrBuilderFrozen is
// returned unwrapped, and row-width, column-count, fixed-region size and
// compression errors name no column.
package errs

import "errors"

var (
	// ErrUnsupportedType is returned when a schema column declares a type
	// outside the closed type enum.
	ErrUnsupportedType = errors.New("datablock: unsupported column type")

	// ErrTypeMismatch is returned when a supplied value cannot be coerced to
	// the declared column type under the widening rules.
	ErrTypeMismatch = errors.New("datablock: value does not match declared column type")

	// ErrIOFailure is returned when a region's bytes cannot be produced or
	// restored: a codec fails to compress or decompress the variable region,
	// or a builder's fixed region does not have the size its layout expects
	// at Finish.
	ErrIOFailure = errors.New("datablock: variable region write failed")

	// ErrBuilderFrozen is returned when a write is attempted after Finish.
	ErrBuilderFrozen = errors.New("datablock: builder is frozen")

	// ErrDuplicateColumn is returned when a schema has two columns with the
	// same name.
	ErrDuplicateColumn = errors.New("datablock: duplicate column name")

	// ErrEmptySchema is returned when a schema has no columns.
	ErrEmptySchema = errors.New("datablock: schema has no columns")

	// ErrRowLengthMismatch is returned when a supplied row does not have one
	// value per schema column.
	ErrRowLengthMismatch = errors.New("datablock: row does not match schema width")

	// ErrColumnLengthMismatch is returned when a supplied column does not
	// have one value per declared row, or when column-major input does not
	// supply one column per schema column.
	ErrColumnLengthMismatch = errors.New("datablock: column does not match row count")

	// ErrInvalidNumRows is returned when a columnar layout is requested with
	// a negative or otherwise invalid row count.
	ErrInvalidNumRows = errors.New("datablock: invalid row count")

	// ErrColumnIndexOutOfRange is returned when a columnar write targets a
	// column index outside the schema bounds.
	ErrColumnIndexOutOfRange = errors.New("datablock: column index out of range")

	// ErrUnsupportedCompression is returned when a block requests a
	// CompressionType outside the closed set the compress package implements.
	ErrUnsupportedCompression = errors.New("datablock: unsupported variable region compression")
)
