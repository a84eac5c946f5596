package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestType_FixedWidth(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want int
	}{
		{"int", Int, 4},
		{"long", Long, 8},
		{"float", Float, 4},
		{"double", Double, 8},
		{"big decimal", BigDecimal, 8},
		{"string", String, 4},
		{"bytes", Bytes, 8},
		{"object", Object, 8},
		{"int array", IntArray, 8},
		{"string array", StringArray, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.FixedWidth())
		})
	}
}

func TestType_IsValid(t *testing.T) {
	assert.True(t, Int.IsValid())
	assert.True(t, BytesArray.IsValid())
	assert.False(t, Type(0).IsValid())
	assert.False(t, Type(99).IsValid())
}

func TestType_IsArray(t *testing.T) {
	assert.False(t, Int.IsArray())
	assert.False(t, String.IsArray())
	assert.True(t, IntArray.IsArray())
	assert.True(t, BytesArray.IsArray())
}

func TestType_HasDictionary(t *testing.T) {
	assert.True(t, String.HasDictionary())
	assert.True(t, StringArray.HasDictionary())
	assert.True(t, BytesArray.HasDictionary())
	assert.False(t, Int.HasDictionary())
	assert.False(t, Bytes.HasDictionary())
}

func TestType_IsVariable(t *testing.T) {
	assert.True(t, BigDecimal.IsVariable())
	assert.True(t, Bytes.IsVariable())
	assert.True(t, Object.IsVariable())
	assert.True(t, IntArray.IsVariable())
	assert.False(t, Int.IsVariable())
	assert.False(t, String.IsVariable())
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "INT", Int.String())
	assert.Equal(t, "BYTES_ARRAY", BytesArray.String())
	assert.Equal(t, "UNKNOWN", Type(99).String())
}
