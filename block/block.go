// Package block implements the cell dispatcher, fixed/variable region
// writers' orchestration, and the builder state machine: the assembly of
// a schema plus row-major or column-major input into a frozen,
// self-describing Block.
package block

import (
	"github.com/queryshard/datablock/compress"
	"github.com/queryshard/datablock/format"
	"github.com/queryshard/datablock/schema"
)

// Block is the frozen product of a RowBuilder or ColumnarBuilder: the row
// count, schema, per-column reverse dictionaries, and the two encoded byte
// regions. A Block is an immutable value safe to hand to other goroutines
// once built.
type Block struct {
	// Type distinguishes the row-mode and columnar-mode fixed-region layouts.
	Type format.BlockType

	// NumRows is the number of rows the block encodes.
	NumRows int

	// Schema is the ordered column list the block was built from.
	Schema schema.Schema

	// ReverseDictionary maps each string-bearing column's name to its
	// id→string dictionary. Columns with no interned values are absent.
	ReverseDictionary map[string]map[int32]string

	// FixedBytes holds one inline record per cell, laid out per Type.
	FixedBytes []byte

	// VariableBytes holds the variable region, optionally compressed as a
	// single opaque unit per VariableCompression.
	VariableBytes []byte

	// VariableCompression records which codec (if any) was applied to
	// VariableBytes so a decoder knows how to reverse it.
	VariableCompression format.CompressionType

	// VariableBytesRawSize is the variable region's length before
	// VariableCompression was applied, carried only so VariableRegionStats
	// can report a ratio without decompressing.
	VariableBytesRawSize int
}

// VariableRegionStats reports how much (if anything) compressing b's
// variable region saved, for callers monitoring space usage across the
// blocks they produce.
func (b *Block) VariableRegionStats() compress.VariableRegionStats {
	return compress.VariableRegionStats{
		Algorithm:      b.VariableCompression,
		OriginalSize:   int64(b.VariableBytesRawSize),
		CompressedSize: int64(len(b.VariableBytes)),
	}
}

// compressVariable applies the builder's configured codec to the variable
// region as a single opaque unit. The fixed region is never compressed.
// Errors returned by compress.CreateCodec and the codec itself already wrap
// an errs sentinel, so there is nothing to add here.
func compressVariable(data []byte, c format.CompressionType) ([]byte, error) {
	if c == format.CompressionNone {
		return data, nil
	}

	codec, err := compress.CreateCodec(c, "variable region")
	if err != nil {
		return nil, err
	}

	return codec.Compress(data)
}
