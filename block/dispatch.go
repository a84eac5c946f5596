// Cell dispatcher: for each (colIndex, declaredType, value) triple, routes
// the value to the matching sub-encoder. Arrays may widen narrower input
// element types before their elements are written.
package block

import (
	"fmt"

	"github.com/queryshard/datablock/errs"
	"github.com/queryshard/datablock/internal/dictionary"
	"github.com/queryshard/datablock/internal/fixedregion"
	"github.com/queryshard/datablock/internal/varregion"
	"github.com/queryshard/datablock/internal/widen"
	"github.com/queryshard/datablock/schema"
)

func unsupportedType(col schema.Column) error {
	return fmt.Errorf("%w: column %q (type %d)", errs.ErrUnsupportedType, col.Name, col.Type)
}

func typeMismatch(col schema.Column, value any) error {
	return fmt.Errorf("%w: column %q (%s), got %T", errs.ErrTypeMismatch, col.Name, col.Type, value)
}

// dispatchCell writes one cell's worth of fixed (and, if variable-indirect,
// variable-region) bytes. Null handling is not part of this core: the
// caller's sentinel values flow through as ordinary values of the declared
// type.
func dispatchCell(fixed *fixedregion.Writer, variable *varregion.Writer, dict *dictionary.Table, s schema.Schema, colIndex int, value any) error {
	col := s[colIndex]

	switch col.Type {
	case schema.Int:
		v, ok := value.(int32)
		if !ok {
			return typeMismatch(col, value)
		}
		fixed.WriteInt32(v)

	case schema.Long:
		v, ok := value.(int64)
		if !ok {
			return typeMismatch(col, value)
		}
		fixed.WriteInt64(v)

	case schema.Float:
		v, ok := value.(float32)
		if !ok {
			return typeMismatch(col, value)
		}
		fixed.WriteFloat32(v)

	case schema.Double:
		v, ok := value.(float64)
		if !ok {
			return typeMismatch(col, value)
		}
		fixed.WriteFloat64(v)

	case schema.BigDecimal:
		v, ok := value.(BigDecimalValue)
		if !ok {
			return typeMismatch(col, value)
		}
		offset, length := variable.WriteBigDecimal(v.Unscaled, v.Scale)
		fixed.WriteIndirect(offset, length)

	case schema.String:
		v, ok := value.(string)
		if !ok {
			return typeMismatch(col, value)
		}
		fixed.WriteDictionaryID(dict.Intern(colIndex, v))

	case schema.Bytes:
		v, ok := value.([]byte)
		if !ok {
			return typeMismatch(col, value)
		}
		offset, length := variable.WriteBytes(v)
		fixed.WriteIndirect(offset, length)

	case schema.Object:
		v, ok := value.(ObjectValue)
		if !ok {
			return typeMismatch(col, value)
		}
		offset, length := variable.WriteObject(v.TypeTag, v.Payload)
		fixed.WriteIndirect(offset, length)

	case schema.BooleanArray, schema.IntArray:
		elems, err := widen.Int32Slice(value)
		if err != nil {
			return wrapWiden(col, err)
		}
		offset, length := variable.WriteInt32Array(elems)
		fixed.WriteIndirect(offset, length)

	case schema.LongArray, schema.TimestampArray:
		elems, release, err := widen.Int64Slice(value)
		if err != nil {
			return wrapWiden(col, err)
		}
		defer release()
		offset, length := variable.WriteInt64Array(elems)
		fixed.WriteIndirect(offset, length)

	case schema.FloatArray:
		elems, err := widen.Float32Slice(value)
		if err != nil {
			return wrapWiden(col, err)
		}
		offset, length := variable.WriteFloat32Array(elems)
		fixed.WriteIndirect(offset, length)

	case schema.DoubleArray:
		elems, release, err := widen.Float64Slice(value)
		if err != nil {
			return wrapWiden(col, err)
		}
		defer release()
		offset, length := variable.WriteFloat64Array(elems)
		fixed.WriteIndirect(offset, length)

	case schema.StringArray, schema.BytesArray:
		// BYTES_ARRAY is routed through the same dictionary path as
		// STRING_ARRAY: each element is interned as a string.
		elems, release, err := widen.StringSlice(value)
		if err != nil {
			return wrapWiden(col, err)
		}
		defer release()

		ids := make([]int32, len(elems))
		for i, e := range elems {
			ids[i] = dict.Intern(colIndex, e)
		}

		offset, length := variable.WriteDictionaryIDArray(ids)
		fixed.WriteIndirect(offset, length)

	default:
		return unsupportedType(col)
	}

	return nil
}

func wrapWiden(col schema.Column, cause error) error {
	return fmt.Errorf("%w: column %q (%s): %v", errs.ErrTypeMismatch, col.Name, col.Type, cause)
}
