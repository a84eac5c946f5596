package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queryshard/datablock/errs"
)

func TestSchema_Validate(t *testing.T) {
	t.Run("empty schema", func(t *testing.T) {
		err := Schema{}.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrEmptySchema))
	})

	t.Run("unsupported type", func(t *testing.T) {
		s := Schema{{Name: "a", Type: Type(99)}}
		err := s.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrUnsupportedType))
	})

	t.Run("duplicate column", func(t *testing.T) {
		s := Schema{{Name: "a", Type: Int}, {Name: "a", Type: Long}}
		err := s.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrDuplicateColumn))
	})

	t.Run("valid schema", func(t *testing.T) {
		s := Schema{{Name: "a", Type: Int}, {Name: "b", Type: String}}
		require.NoError(t, s.Validate())
	})
}

func TestSchema_IndexOf(t *testing.T) {
	s := Schema{{Name: "a", Type: Int}, {Name: "b", Type: String}}
	assert.Equal(t, 0, s.IndexOf("a"))
	assert.Equal(t, 1, s.IndexOf("b"))
	assert.Equal(t, -1, s.IndexOf("missing"))
}

func TestSchema_NumColumns(t *testing.T) {
	s := Schema{{Name: "a", Type: Int}, {Name: "b", Type: String}}
	assert.Equal(t, 2, s.NumColumns())
}
