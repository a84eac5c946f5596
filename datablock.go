// Package datablock provides a compact, self-describing binary encoding for
// tabular datasets, suitable for inter-node transport in a distributed
// query engine.
//
// A caller describes a dataset with a Schema — an ordered list of
// (name, Type) columns — and supplies data either row-major or
// column-major. The encoder routes each cell through a type-specific
// sub-encoder: fixed-width values are written inline, variable-width values
// (big decimals, raw bytes, objects, arrays) write an (offset, length)
// indirection into an append-only variable region, and string-bearing
// columns are deduplicated through a per-column dictionary.
//
// # Core Features
//
//   - Two product shapes: row-mode and columnar-mode blocks, sharing one
//     dispatcher and producing identical dictionaries for the same data.
//     Each mode appends variable-region payloads in its own write order
//     (row by row, or column by column), so the two variable regions are
//     byte-identical only when at most one column writes to the variable
//     region
//   - Widening promotions for array columns: narrower input element types
//     (int32, float32) are promoted to the declared width without loss
//   - Per-column string dictionaries with dense, first-occurrence-order ids
//   - Optional compression (None, Zstd, S2, LZ4) of the variable region
//   - Always big-endian, bit-exact big-decimal encoding
//
// # Basic Usage
//
// Building a row-mode block:
//
//	import "github.com/queryshard/datablock"
//
//	s := datablock.Schema{
//	    {Name: "id", Type: datablock.Int},
//	    {Name: "name", Type: datablock.String},
//	}
//
//	blk, err := datablock.BuildFromRows(s, [][]any{
//	    {int32(1), "alice"},
//	    {int32(2), "bob"},
//	})
//
// Building a columnar-mode block with variable-region compression:
//
//	blk, err := datablock.BuildFromColumns(s, [][]any{
//	    {int32(1), int32(2)},
//	    {"alice", "bob"},
//	}, datablock.WithVariableCompression(format.CompressionZstd))
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the block
// package, aliasing the schema types most callers need. For direct access
// to the Builder state machine, use the block package.
package datablock

import (
	"github.com/queryshard/datablock/block"
	"github.com/queryshard/datablock/compress"
	"github.com/queryshard/datablock/format"
	"github.com/queryshard/datablock/schema"
)

type (
	// Schema is the ordered column list describing a dataset.
	Schema = schema.Schema
	// Column is one (name, storedType) pair in a Schema.
	Column = schema.Column
	// Type is a column's declared storage type.
	Type = schema.Type

	// Block is the frozen product of encoding a dataset.
	Block = block.Block
	// RowBuilder assembles a row-mode Block one row at a time.
	RowBuilder = block.RowBuilder
	// ColumnarBuilder assembles a columnar-mode Block one column at a time.
	ColumnarBuilder = block.ColumnarBuilder
	// BuilderOption configures a RowBuilder or ColumnarBuilder.
	BuilderOption = block.BuilderOption
	// BigDecimalValue is the cell value for BIG_DECIMAL columns.
	BigDecimalValue = block.BigDecimalValue
	// ObjectValue is the cell value for OBJECT columns.
	ObjectValue = block.ObjectValue
	// VariableRegionStats reports a built Block's compression ratio. See
	// Block.VariableRegionStats.
	VariableRegionStats = compress.VariableRegionStats
)

// The closed set of column storage types.
const (
	Int            = schema.Int
	Long           = schema.Long
	Float          = schema.Float
	Double         = schema.Double
	BigDecimal     = schema.BigDecimal
	String         = schema.String
	Bytes          = schema.Bytes
	Object         = schema.Object
	BooleanArray   = schema.BooleanArray
	IntArray       = schema.IntArray
	LongArray      = schema.LongArray
	TimestampArray = schema.TimestampArray
	FloatArray     = schema.FloatArray
	DoubleArray    = schema.DoubleArray
	StringArray    = schema.StringArray
	BytesArray     = schema.BytesArray
)

// NewRowBuilder creates a builder that assembles a row-mode Block one row
// at a time. See block.NewRowBuilder for details.
func NewRowBuilder(s Schema, opts ...BuilderOption) (*RowBuilder, error) {
	return block.NewRowBuilder(s, opts...)
}

// NewColumnarBuilder creates a builder that assembles a columnar-mode Block
// one column at a time. numRows must be fixed upfront so the fixed
// region's cumulative column offsets are meaningful from the start. See
// block.NewColumnarBuilder for details.
func NewColumnarBuilder(s Schema, numRows int, opts ...BuilderOption) (*ColumnarBuilder, error) {
	return block.NewColumnarBuilder(s, numRows, opts...)
}

// BuildFromRows builds a row-mode Block from row-major input in one call.
func BuildFromRows(s Schema, rows [][]any, opts ...BuilderOption) (*Block, error) {
	return block.BuildFromRows(s, rows, opts...)
}

// BuildFromColumns builds a columnar-mode Block from column-major input in
// one call.
func BuildFromColumns(s Schema, columns [][]any, opts ...BuilderOption) (*Block, error) {
	return block.BuildFromColumns(s, columns, opts...)
}

// WithVariableCompression selects the codec applied to the variable region
// when the block is frozen. The fixed region is never compressed.
func WithVariableCompression(c format.CompressionType) BuilderOption {
	return block.WithVariableCompression(c)
}
