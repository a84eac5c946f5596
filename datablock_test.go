package datablock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queryshard/datablock"
)

func TestBuildFromRows_TopLevelAlias(t *testing.T) {
	s := datablock.Schema{
		{Name: "id", Type: datablock.Int},
		{Name: "name", Type: datablock.String},
	}

	blk, err := datablock.BuildFromRows(s, [][]any{
		{int32(1), "alice"},
		{int32(2), "bob"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, blk.NumRows)
	assert.Equal(t, map[int32]string{0: "alice", 1: "bob"}, blk.ReverseDictionary["name"])
}

func TestNewColumnarBuilder_TopLevelAlias(t *testing.T) {
	s := datablock.Schema{{Name: "a", Type: datablock.Int}}

	b, err := datablock.NewColumnarBuilder(s, 2)
	require.NoError(t, err)
	require.NoError(t, b.WriteColumn(0, []any{int32(1), int32(2)}))

	blk, err := b.Finish()
	require.NoError(t, err)
	assert.Equal(t, 2, blk.NumRows)
}
