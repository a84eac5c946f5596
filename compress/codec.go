package compress

import (
	"fmt"

	"github.com/queryshard/datablock/errs"
	"github.com/queryshard/datablock/format"
)

// Compressor compresses a DataBlock's variable region as a single opaque
// unit after the block has been fully written.
//
//   - variableRegion is the region's raw bytes: dictionary string bytes are
//     not stored there (see internal/dictionary), so this is
//     BIG_DECIMAL/BYTES/OBJECT/array payloads only.
//   - Sizes are usually a few KB to a few hundred KB per block.
type Compressor interface {
	// Compress compresses variableRegion and returns the compressed result.
	//
	// variableRegion is never modified. The compressing codecs return a
	// newly allocated slice; NoOpCompressor returns variableRegion itself,
	// sharing its backing array. Implementations may reuse internal scratch
	// buffers across calls but must not mutate the argument.
	Compress(variableRegion []byte) ([]byte, error)
}

// Decompressor reverses a Compressor's transform.
//
// Compressor and Decompressor are separate interfaces because a block
// reader only ever needs the latter: a reader that only decodes blocks
// pulls in none of a compressor's encoder-side state.
type Decompressor interface {
	// Decompress restores compressed back to the original variable region
	// bytes. compressed must have been produced by the matching Compressor;
	// decompressing with the wrong algorithm, or corrupted input, returns
	// an error wrapping errs.ErrIOFailure.
	Decompress(compressed []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm, as returned
// by CreateCodec for a block's configured format.CompressionType.
type Codec interface {
	Compressor
	Decompressor
}

// VariableRegionStats reports the effect compressing one block's variable
// region had, for callers monitoring space usage across the blocks they
// produce. See block.Block.VariableRegionStats.
type VariableRegionStats struct {
	// Algorithm is the CompressionType applied.
	Algorithm format.CompressionType

	// OriginalSize is the variable region's length before compression.
	OriginalSize int64

	// CompressedSize is the variable region's length after compression
	// (equal to OriginalSize when Algorithm is format.CompressionNone).
	CompressedSize int64
}

// CompressionRatio returns CompressedSize / OriginalSize.
//
// Values less than 1.0 indicate successful compression, 1.0 indicates no
// benefit, and values greater than 1.0 indicate overhead (possible on small
// or already-dense variable regions).
func (s VariableRegionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage (0-100, negative if
// compression added overhead).
func (s VariableRegionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec builds the Codec for compressionType. target names the
// region being compressed, folded into the error message when
// compressionType falls outside the closed set a block's
// format.CompressionType enumerates.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s requested for %s", errs.ErrUnsupportedCompression, compressionType, target)
	}
}
