package block

import (
	"github.com/queryshard/datablock/errs"
	"github.com/queryshard/datablock/format"
	"github.com/queryshard/datablock/internal/dictionary"
	"github.com/queryshard/datablock/internal/fixedregion"
	"github.com/queryshard/datablock/internal/varregion"
	"github.com/queryshard/datablock/schema"
)

// builderState tracks the builder lifecycle: Created on construction,
// Writing from the first cell write, Frozen once Finish is called. No
// writes are accepted once Frozen.
type builderState uint8

const (
	stateCreated builderState = iota
	stateWriting
	stateFrozen
)

// builderCore holds the buffers and dictionary shared by RowBuilder and
// ColumnarBuilder; only the surrounding layout validation differs between
// the two product shapes. Appending cell bytes sequentially as the
// dispatcher is called reproduces both layouts exactly: callers drive the
// dispatcher row-by-row (interleaved) for row mode and column-by-column
// (back-to-back) for columnar mode, so a single append-only fixed-region
// writer serves both.
type builderCore struct {
	schema      schema.Schema
	state       builderState
	dict        *dictionary.Table
	fixed       *fixedregion.Writer
	variable    *varregion.Writer
	compression format.CompressionType
}

func newBuilderCore(s schema.Schema, compression format.CompressionType) *builderCore {
	return &builderCore{
		schema:      s,
		state:       stateCreated,
		dict:        dictionary.NewTable(len(s)),
		fixed:       fixedregion.NewWriter(),
		variable:    varregion.NewWriter(),
		compression: compression,
	}
}

func (b *builderCore) writeCell(colIndex int, value any) error {
	if b.state == stateFrozen {
		return errs.ErrBuilderFrozen
	}
	b.state = stateWriting

	return dispatchCell(b.fixed, b.variable, b.dict, b.schema, colIndex, value)
}

func (b *builderCore) freeze() {
	b.state = stateFrozen
}

func (b *builderCore) release() {
	b.fixed.Release()
	b.variable.Release()
}

func (b *builderCore) columnNames() []string {
	names := make([]string, len(b.schema))
	for i, col := range b.schema {
		names[i] = col.Name
	}

	return names
}
