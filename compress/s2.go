package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/queryshard/datablock/errs"
)

// S2Compressor backs format.CompressionS2: Snappy-compatible, built for
// throughput over ratio, the cheapest non-None option for a variable region
// a caller expects to decompress often.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 Codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress S2-encodes variableRegion.
func (c S2Compressor) Compress(variableRegion []byte) ([]byte, error) {
	if len(variableRegion) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, variableRegion), nil
}

// Decompress S2-decodes compressed, returning an error wrapping
// errs.ErrIOFailure if the bytes are not a valid S2 stream.
func (c S2Compressor) Decompress(compressed []byte) ([]byte, error) {
	if len(compressed) == 0 {
		return nil, nil
	}

	out, err := s2.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("%w: s2 decompress: %v", errs.ErrIOFailure, err)
	}

	return out, nil
}
