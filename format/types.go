// Package format defines the small enums that tag a DataBlock's physical
// layout: which product shape (row vs columnar) its fixed region uses, and
// which codec (if any) compresses its variable region.
package format

type (
	// BlockType distinguishes the two product shapes a Block can take.
	BlockType uint8
	// CompressionType selects the codec applied to a block's variable region.
	CompressionType uint8
)

const (
	// RowBlock interleaves cells row-by-row in the fixed region.
	RowBlock BlockType = 0x1
	// ColumnarBlock concatenates each column's cells back-to-back in the fixed region.
	ColumnarBlock BlockType = 0x2

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (b BlockType) String() string {
	switch b {
	case RowBlock:
		return "Row"
	case ColumnarBlock:
		return "Columnar"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
