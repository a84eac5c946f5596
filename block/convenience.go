package block

import (
	"fmt"

	"github.com/queryshard/datablock/errs"
	"github.com/queryshard/datablock/schema"
)

// BuildFromRows builds a row-mode Block from row-major input in a single
// call: one WriteRow per row, then Finish. Any dispatch error aborts the
// block; the partial builder is discarded.
func BuildFromRows(s schema.Schema, rows [][]any, opts ...BuilderOption) (*Block, error) {
	b, err := NewRowBuilder(s, opts...)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if err := b.WriteRow(row); err != nil {
			return nil, err
		}
	}

	return b.Finish()
}

// BuildFromColumns builds a columnar-mode Block from column-major input in
// a single call: one WriteColumn per column, then Finish. columns must have
// exactly one slice per schema column; row count is taken from the first
// column's length (0 if there are no columns).
func BuildFromColumns(s schema.Schema, columns [][]any, opts ...BuilderOption) (*Block, error) {
	if len(columns) != s.NumColumns() {
		return nil, fmt.Errorf("%w: expected %d columns, got %d", errs.ErrColumnLengthMismatch, s.NumColumns(), len(columns))
	}

	numRows := 0
	if len(columns) > 0 {
		numRows = len(columns[0])
	}

	b, err := NewColumnarBuilder(s, numRows, opts...)
	if err != nil {
		return nil, err
	}

	for i, col := range columns {
		if err := b.WriteColumn(i, col); err != nil {
			return nil, err
		}
	}

	return b.Finish()
}
