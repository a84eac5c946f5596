// Package schema defines the closed set of column types a DataBlock can
// encode, the ordered column list describing a dataset, and the byte-layout
// analyzer that precomputes row strides and columnar offsets before any cell
// is written.
package schema

// Type is a column's declared storage type. The set is closed: the
// dispatcher rejects any value outside this enum with errs.ErrUnsupportedType.
type Type uint8

const (
	Int Type = iota + 1
	Long
	Float
	Double
	BigDecimal
	String
	Bytes
	Object

	BooleanArray
	IntArray
	LongArray
	TimestampArray
	FloatArray
	DoubleArray
	StringArray
	BytesArray
)

// String returns the canonical enum identifier for the type.
func (t Type) String() string {
	switch t {
	case Int:
		return "INT"
	case Long:
		return "LONG"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case BigDecimal:
		return "BIG_DECIMAL"
	case String:
		return "STRING"
	case Bytes:
		return "BYTES"
	case Object:
		return "OBJECT"
	case BooleanArray:
		return "BOOLEAN_ARRAY"
	case IntArray:
		return "INT_ARRAY"
	case LongArray:
		return "LONG_ARRAY"
	case TimestampArray:
		return "TIMESTAMP_ARRAY"
	case FloatArray:
		return "FLOAT_ARRAY"
	case DoubleArray:
		return "DOUBLE_ARRAY"
	case StringArray:
		return "STRING_ARRAY"
	case BytesArray:
		return "BYTES_ARRAY"
	default:
		return "UNKNOWN"
	}
}

// IsValid reports whether t is a member of the closed type enum.
func (t Type) IsValid() bool {
	switch t {
	case Int, Long, Float, Double, BigDecimal, String, Bytes, Object,
		BooleanArray, IntArray, LongArray, TimestampArray, FloatArray, DoubleArray, StringArray, BytesArray:
		return true
	default:
		return false
	}
}

// IsArray reports whether t is one of the multi-valued *_ARRAY types.
func (t Type) IsArray() bool {
	switch t {
	case BooleanArray, IntArray, LongArray, TimestampArray, FloatArray, DoubleArray, StringArray, BytesArray:
		return true
	default:
		return false
	}
}

// HasDictionary reports whether t stores its scalar/element data through the
// per-column string dictionary (String and StringArray, plus BytesArray,
// whose elements are routed through the same dictionary path).
func (t Type) HasDictionary() bool {
	switch t {
	case String, StringArray, BytesArray:
		return true
	default:
		return false
	}
}

// FixedWidth returns the number of bytes this type occupies in the fixed
// region for one cell.
func (t Type) FixedWidth() int {
	switch t {
	case Int, Float:
		return 4
	case Long, Double:
		return 8
	case BigDecimal:
		return 8 // offset:int32 | length:int32
	case String:
		return 4 // dictionaryId:int32
	case Bytes, Object:
		return 8 // offset:int32 | length:int32
	default:
		// every *_ARRAY type
		if t.IsArray() {
			return 8 // offset:int32 | length:int32
		}

		return 0
	}
}

// IsVariable reports whether a cell of type t writes an indirection pair
// (offset, length) into the fixed region instead of an inline value.
func (t Type) IsVariable() bool {
	switch t {
	case BigDecimal, Bytes, Object:
		return true
	default:
		return t.IsArray()
	}
}
