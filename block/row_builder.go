package block

import (
	"fmt"

	"github.com/queryshard/datablock/errs"
	"github.com/queryshard/datablock/format"
	"github.com/queryshard/datablock/schema"
)

// RowBuilder assembles a row-mode Block: one producer writes whole rows in
// order, each row immediately interleaving its cells into the fixed region.
// A RowBuilder is not reusable past Finish.
type RowBuilder struct {
	core    *builderCore
	layout  *schema.RowLayout
	numRows int
}

// NewRowBuilder creates a RowBuilder for s. It fails with
// errs.ErrUnsupportedType, errs.ErrDuplicateColumn, or errs.ErrEmptySchema
// if s is invalid.
func NewRowBuilder(s schema.Schema, opts ...BuilderOption) (*RowBuilder, error) {
	cfg, err := newBuilderConfig(opts...)
	if err != nil {
		return nil, err
	}

	layout, err := schema.NewRowLayout(s)
	if err != nil {
		return nil, err
	}

	return &RowBuilder{
		core:   newBuilderCore(s, cfg.compression),
		layout: layout,
	}, nil
}

// WriteRow dispatches one row's cells in schema column order. row must have
// exactly one value per column.
func (b *RowBuilder) WriteRow(row []any) error {
	if len(row) != b.layout.Schema().NumColumns() {
		return fmt.Errorf("%w: expected %d values, got %d", errs.ErrRowLengthMismatch, b.layout.Schema().NumColumns(), len(row))
	}

	for i, v := range row {
		if err := b.core.writeCell(i, v); err != nil {
			return err
		}
	}

	b.numRows++

	return nil
}

// Finish freezes the builder and assembles the row-mode Block. The builder
// must not be used afterward.
func (b *RowBuilder) Finish() (*Block, error) {
	b.core.freeze()
	defer b.core.release()

	fixedBytes := append([]byte(nil), b.core.fixed.Bytes()...)

	wantLen := b.numRows * b.layout.RowStride()
	if len(fixedBytes) != wantLen {
		return nil, fmt.Errorf("%w: fixed region is %d bytes, expected %d", errs.ErrIOFailure, len(fixedBytes), wantLen)
	}

	rawVariableLen := b.core.variable.Size()

	variableBytes, err := compressVariable(b.core.variable.Bytes(), b.core.compression)
	if err != nil {
		return nil, err
	}

	return &Block{
		Type:                 format.RowBlock,
		NumRows:              b.numRows,
		Schema:               b.layout.Schema(),
		ReverseDictionary:    b.core.dict.ReverseDictionaries(b.core.columnNames()),
		FixedBytes:           fixedBytes,
		VariableBytes:        append([]byte(nil), variableBytes...),
		VariableCompression:  b.core.compression,
		VariableBytesRawSize: rawVariableLen,
	}, nil
}
