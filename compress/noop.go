package compress

// NoOpCompressor passes a variable region through unchanged. It backs
// format.CompressionNone: the default, and the right choice when the
// variable region is small or already dense (dictionary-heavy blocks, for
// instance, often aren't worth spending cycles compressing further).
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through Codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns variableRegion unchanged, sharing its backing array.
// Callers must not mutate variableRegion afterward if they still hold the
// returned slice.
func (c NoOpCompressor) Compress(variableRegion []byte) ([]byte, error) {
	return variableRegion, nil
}

// Decompress returns compressed unchanged, sharing its backing array.
func (c NoOpCompressor) Decompress(compressed []byte) ([]byte, error) {
	return compressed, nil
}
