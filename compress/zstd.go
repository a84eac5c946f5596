package compress

// ZstdCompressor backs format.CompressionZstd: the best ratio of the four
// options, at the highest CPU cost, for variable regions headed to cold
// storage or network transit where bandwidth matters more than the cycles
// spent getting there.
//
// Compress/Decompress live in zstd_cgo.go and zstd_pure.go, split on the
// nobuild build tag: zstd_cgo.go binds valyala/gozstd and is compiled only
// with that tag; every other build compiles zstd_pure.go, which binds
// klauspost/compress/zstd with pooled encoders/decoders.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd Codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
