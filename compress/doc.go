// Package compress provides the optional codecs a DataBlock builder can
// apply to its variable region before the block is assembled.
//
// The fixed region is never compressed: it holds one inline record per
// cell and downstream decoders rely on being able to seek into it at
// offset = rowIndex*rowStride + columnOffset without first inflating
// anything. The variable region, by contrast, is an opaque append-only byte
// stream referenced only through (offset, length) pairs, so compressing it
// as a single unit after the block is built is safe and transparent to the
// fixed-region layout.
//
// # Supported codecs
//
//   - None: no compression, lowest CPU cost.
//   - Zstd: best ratio, moderate speed; good for BYTES-heavy blocks.
//   - S2: balanced ratio and speed.
//   - LZ4: fastest decompression, moderate ratio.
//
// # Usage
//
//	codec, _ := compress.CreateCodec(format.CompressionZstd, "variable region")
//	compressed, _ := codec.Compress(variableBytes)
//
// Block builders select a codec via block.WithVariableCompression; the
// resulting Block records which codec was used so a collaborator holding the
// decode side of this contract knows how to invert it.
package compress
