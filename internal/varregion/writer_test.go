package varregion

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteBytes_OffsetTracksSize(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	off1, len1 := w.WriteBytes([]byte("AB"))
	off2, len2 := w.WriteBytes([]byte("CDE"))

	assert.Equal(t, 0, off1)
	assert.Equal(t, 2, len1)
	assert.Equal(t, 2, off2)
	assert.Equal(t, 3, len2)
	assert.Equal(t, []byte("ABCDE"), w.Bytes())
}

func TestWriter_WriteObject_LengthExcludesTag(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	offset, length := w.WriteObject(42, []byte("payload"))

	assert.Equal(t, 0, offset)
	assert.Equal(t, len("payload"), length, "length must exclude the 4-byte type tag")
	assert.Equal(t, 4+len("payload"), w.Size())
}

func TestWriter_WriteInt64Array(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	offset, length := w.WriteInt64Array([]int64{1, 2})

	assert.Equal(t, 0, offset)
	assert.Equal(t, 4+16, length)
}

func TestWriter_WriteDictionaryIDArray(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	offset, length := w.WriteDictionaryIDArray([]int32{0, 1, 0})

	assert.Equal(t, 0, offset)
	assert.Equal(t, 4+12, length)
}

func TestWriter_WriteBigDecimal_RoundTripsSignMagnitude(t *testing.T) {
	tests := []struct {
		name     string
		unscaled *big.Int
		scale    int32
	}{
		{"zero", big.NewInt(0), 0},
		{"positive", big.NewInt(12345), 2},
		{"negative", big.NewInt(-129), 2},
		{"negative one", big.NewInt(-1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter()
			defer w.Release()

			offset, length := w.WriteBigDecimal(tt.unscaled, tt.scale)
			require.Equal(t, 0, offset)

			payload := w.Bytes()[offset : offset+length]
			require.True(t, len(payload) >= 4)

			magnitude := payload[4:]
			got := new(big.Int).SetBytes(magnitude)
			if tt.unscaled.Sign() < 0 {
				// two's-complement negative: decode by subtracting 2^(8*len(magnitude))
				mod := new(big.Int).Lsh(big.NewInt(1), uint(8*len(magnitude)))
				got.Sub(got, mod)
			}
			assert.Equal(t, tt.unscaled.String(), got.String())
		})
	}
}
