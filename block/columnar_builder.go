package block

import (
	"fmt"

	"github.com/queryshard/datablock/errs"
	"github.com/queryshard/datablock/format"
	"github.com/queryshard/datablock/schema"
)

// ColumnarBuilder assembles a columnar-mode Block: one producer writes
// whole columns in order, each column's cells landing back-to-back in the
// fixed region. numRows is fixed at construction so cumulative column
// offsets are meaningful from the start; WriteColumn rejects any column
// whose length disagrees with it. A ColumnarBuilder is not reusable past
// Finish.
type ColumnarBuilder struct {
	core   *builderCore
	layout *schema.ColumnarLayout
}

// NewColumnarBuilder creates a ColumnarBuilder for s holding numRows rows.
// It fails with errs.ErrInvalidNumRows if numRows is negative, or the usual
// schema validation errors.
func NewColumnarBuilder(s schema.Schema, numRows int, opts ...BuilderOption) (*ColumnarBuilder, error) {
	cfg, err := newBuilderConfig(opts...)
	if err != nil {
		return nil, err
	}

	layout, err := schema.NewColumnarLayout(s, numRows)
	if err != nil {
		return nil, err
	}

	return &ColumnarBuilder{
		core:   newBuilderCore(s, cfg.compression),
		layout: layout,
	}, nil
}

// WriteColumn dispatches one column's cells, in row order. values must have
// exactly NumRows entries, and colIndex must address a schema column in the
// order columns are written (columnar mode requires columns be written in
// schema order so the fixed region's cumulative offsets match the layout).
func (b *ColumnarBuilder) WriteColumn(colIndex int, values []any) error {
	if colIndex < 0 || colIndex >= b.layout.Schema().NumColumns() {
		return fmt.Errorf("%w: %d", errs.ErrColumnIndexOutOfRange, colIndex)
	}

	if len(values) != b.layout.NumRows() {
		col := b.layout.Schema()[colIndex]

		return fmt.Errorf("%w: column %q expected %d values, got %d", errs.ErrColumnLengthMismatch, col.Name, b.layout.NumRows(), len(values))
	}

	for _, v := range values {
		if err := b.core.writeCell(colIndex, v); err != nil {
			return err
		}
	}

	return nil
}

// Finish freezes the builder and assembles the columnar-mode Block. The
// builder must not be used afterward.
func (b *ColumnarBuilder) Finish() (*Block, error) {
	b.core.freeze()
	defer b.core.release()

	fixedBytes := append([]byte(nil), b.core.fixed.Bytes()...)

	if len(fixedBytes) != b.layout.TotalSize() {
		return nil, fmt.Errorf("%w: fixed region is %d bytes, expected %d", errs.ErrIOFailure, len(fixedBytes), b.layout.TotalSize())
	}

	rawVariableLen := b.core.variable.Size()

	variableBytes, err := compressVariable(b.core.variable.Bytes(), b.core.compression)
	if err != nil {
		return nil, err
	}

	return &Block{
		Type:                 format.ColumnarBlock,
		NumRows:              b.layout.NumRows(),
		Schema:               b.layout.Schema(),
		ReverseDictionary:    b.core.dict.ReverseDictionaries(b.core.columnNames()),
		FixedBytes:           fixedBytes,
		VariableBytes:        append([]byte(nil), variableBytes...),
		VariableCompression:  b.core.compression,
		VariableBytesRawSize: rawVariableLen,
	}, nil
}
