package block

import "math/big"

// BigDecimalValue is the cell value accepted for BIG_DECIMAL columns: an
// arbitrary-precision unscaled integer plus a base-10 scale.
type BigDecimalValue struct {
	Unscaled *big.Int
	Scale    int32
}

// ObjectValue is the cell value accepted for OBJECT columns: an opaque
// payload tagged with the serializer that produced it.
type ObjectValue struct {
	TypeTag int32
	Payload []byte
}
