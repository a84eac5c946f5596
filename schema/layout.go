package schema

import (
	"fmt"

	"github.com/queryshard/datablock/errs"
)

// RowLayout precomputes, for row mode, the byte offset of each column
// within a row and the total row stride. Offsets are byte-exact and stable
// for the life of the layout: no padding, no alignment.
type RowLayout struct {
	schema    Schema
	offsets   []int // offsets[i] = byte offset of column i within a row
	rowStride int
}

// NewRowLayout analyzes s and returns a RowLayout. It fails with
// errs.ErrEmptySchema, errs.ErrUnsupportedType or errs.ErrDuplicateColumn if
// s is invalid.
func NewRowLayout(s Schema) (*RowLayout, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	offsets := make([]int, len(s))
	stride := 0
	for i, col := range s {
		offsets[i] = stride
		stride += col.Type.FixedWidth()
	}

	return &RowLayout{schema: s, offsets: offsets, rowStride: stride}, nil
}

// Schema returns the schema this layout was built from.
func (l *RowLayout) Schema() Schema { return l.schema }

// RowStride returns the row's total byte width (Σ widthOf(columnᵢ)).
func (l *RowLayout) RowStride() int { return l.rowStride }

// ColumnOffset returns the byte offset of column i within a row.
func (l *RowLayout) ColumnOffset(i int) int { return l.offsets[i] }

// ColumnarLayout precomputes, for columnar mode, each column's byte size and
// its cumulative byte offset within the fixed region. These offsets depend
// on numRows and so are only meaningful once numRows is fixed at
// construction time.
type ColumnarLayout struct {
	schema  Schema
	numRows int
	sizes   []int // sizes[i] = numRows * widthOf(columnᵢ)
	offsets []int // offsets[i] = cumulative byte offset of column i
	total   int
}

// NewColumnarLayout analyzes s for a columnar block holding numRows rows.
func NewColumnarLayout(s Schema, numRows int) (*ColumnarLayout, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if numRows < 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidNumRows, numRows)
	}

	sizes := make([]int, len(s))
	offsets := make([]int, len(s))
	cumulative := 0
	for i, col := range s {
		size := numRows * col.Type.FixedWidth()
		sizes[i] = size
		offsets[i] = cumulative
		cumulative += size
	}

	return &ColumnarLayout{schema: s, numRows: numRows, sizes: sizes, offsets: offsets, total: cumulative}, nil
}

// Schema returns the schema this layout was built from.
func (l *ColumnarLayout) Schema() Schema { return l.schema }

// NumRows returns the row count the layout was built for.
func (l *ColumnarLayout) NumRows() int { return l.numRows }

// ColumnSize returns the total byte size of column i (numRows * width).
func (l *ColumnarLayout) ColumnSize(i int) int { return l.sizes[i] }

// ColumnOffset returns the cumulative byte offset of column i within the
// fixed region.
func (l *ColumnarLayout) ColumnOffset(i int) int { return l.offsets[i] }

// TotalSize returns Σᵢ numRows × widthOf(columnᵢ), the full fixed-region size.
func (l *ColumnarLayout) TotalSize() int { return l.total }
