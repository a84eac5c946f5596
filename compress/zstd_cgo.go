//go:build nobuild

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/queryshard/datablock/errs"
)

// Compress Zstd-encodes variableRegion at level 3, gozstd's balance of
// ratio and speed for block-sized inputs.
func (c ZstdCompressor) Compress(variableRegion []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, variableRegion, 3), nil
}

// Decompress Zstd-decodes compressed.
func (c ZstdCompressor) Decompress(compressed []byte) ([]byte, error) {
	if len(compressed) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd (cgo) decompress: %v", errs.ErrIOFailure, err)
	}

	return out, nil
}
