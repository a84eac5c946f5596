package varregion

import "math/big"

// twosComplementBytes renders v as the minimal-length two's-complement
// big-endian byte sequence, matching Java's BigInteger.toByteArray, for
// bit-exact compatibility with the wire format's big-decimal encoding.
func twosComplementBytes(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{0}
	}

	if v.Sign() > 0 {
		b := v.Bytes()
		if b[0]&0x80 != 0 {
			return append([]byte{0}, b...)
		}

		return b
	}

	n := 1
	for {
		lowBound := new(big.Int).Lsh(big.NewInt(-1), uint(8*n-1))
		if v.Cmp(lowBound) >= 0 {
			break
		}
		n++
	}

	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
	tc := new(big.Int).Add(mod, v)

	b := tc.Bytes()
	if len(b) < n {
		padded := make([]byte, n)
		copy(padded[n-len(b):], b)
		b = padded
	}

	return b
}
