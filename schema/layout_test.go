package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queryshard/datablock/errs"
)

func TestNewRowLayout(t *testing.T) {
	s := Schema{
		{Name: "a", Type: Int},    // 4
		{Name: "b", Type: Long},   // 8
		{Name: "c", Type: String}, // 4
	}

	l, err := NewRowLayout(s)
	require.NoError(t, err)

	assert.Equal(t, 0, l.ColumnOffset(0))
	assert.Equal(t, 4, l.ColumnOffset(1))
	assert.Equal(t, 12, l.ColumnOffset(2))
	assert.Equal(t, 16, l.RowStride())
}

func TestNewRowLayout_InvalidSchema(t *testing.T) {
	_, err := NewRowLayout(Schema{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrEmptySchema))
}

func TestNewColumnarLayout(t *testing.T) {
	s := Schema{
		{Name: "a", Type: Int},  // 4 * 3 = 12
		{Name: "b", Type: Long}, // 8 * 3 = 24
	}

	l, err := NewColumnarLayout(s, 3)
	require.NoError(t, err)

	assert.Equal(t, 12, l.ColumnSize(0))
	assert.Equal(t, 24, l.ColumnSize(1))
	assert.Equal(t, 0, l.ColumnOffset(0))
	assert.Equal(t, 12, l.ColumnOffset(1))
	assert.Equal(t, 36, l.TotalSize())
	assert.Equal(t, 3, l.NumRows())
}

func TestNewColumnarLayout_NegativeNumRows(t *testing.T) {
	s := Schema{{Name: "a", Type: Int}}
	_, err := NewColumnarLayout(s, -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidNumRows))
}

func TestNewColumnarLayout_ZeroRows(t *testing.T) {
	s := Schema{{Name: "a", Type: Int}, {Name: "b", Type: String}}
	l, err := NewColumnarLayout(s, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, l.TotalSize())
	assert.Equal(t, 0, l.ColumnSize(0))
}
