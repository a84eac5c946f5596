// Package widen implements the element-wise numeric promotions applied when
// an array column's declared type is wider than its input element type.
//
// Go has no sum types, so each declared array type gets its own function,
// type-switching over the concrete slice types a caller may supply.
//
// A promotion allocates a new element array of the target width, drawn from
// internal/pool's slice pools, and must be released via the returned
// release func once the caller has copied the widened elements into the
// variable region.
package widen

import (
	"fmt"

	"github.com/queryshard/datablock/errs"
	"github.com/queryshard/datablock/internal/pool"
)

var noRelease = func() {}

// Int32Slice accepts the input for INT_ARRAY / BOOLEAN_ARRAY columns: only
// 32-bit signed integers, no promotion, so no allocation is needed.
func Int32Slice(value any) ([]int32, error) {
	v, ok := value.([]int32)
	if !ok {
		return nil, fmt.Errorf("%w: expected []int32, got %T", errs.ErrTypeMismatch, value)
	}

	return v, nil
}

// Int64Slice accepts the input for LONG_ARRAY / TIMESTAMP_ARRAY columns:
// 32- or 64-bit signed integers, widening int32 elements to int64.
func Int64Slice(value any) (out []int64, release func(), err error) {
	switch v := value.(type) {
	case []int64:
		return v, noRelease, nil
	case []int32:
		out, release = pool.GetInt64Slice(len(v))
		for i, e := range v {
			out[i] = int64(e)
		}

		return out, release, nil
	default:
		return nil, noRelease, fmt.Errorf("%w: expected []int32 or []int64, got %T", errs.ErrTypeMismatch, value)
	}
}

// Float32Slice accepts the input for FLOAT_ARRAY columns: only 32-bit
// floats, no promotion.
func Float32Slice(value any) ([]float32, error) {
	v, ok := value.([]float32)
	if !ok {
		return nil, fmt.Errorf("%w: expected []float32, got %T", errs.ErrTypeMismatch, value)
	}

	return v, nil
}

// Float64Slice accepts the input for DOUBLE_ARRAY columns: 32/64-bit ints or
// floats, widening every element to float64 under IEEE widening rules.
func Float64Slice(value any) (out []float64, release func(), err error) {
	switch v := value.(type) {
	case []float64:
		return v, noRelease, nil
	case []float32:
		out, release = pool.GetFloat64Slice(len(v))
		for i, e := range v {
			out[i] = float64(e)
		}

		return out, release, nil
	case []int64:
		out, release = pool.GetFloat64Slice(len(v))
		for i, e := range v {
			out[i] = float64(e)
		}

		return out, release, nil
	case []int32:
		out, release = pool.GetFloat64Slice(len(v))
		for i, e := range v {
			out[i] = float64(e)
		}

		return out, release, nil
	default:
		return nil, noRelease, fmt.Errorf("%w: expected a numeric slice, got %T", errs.ErrTypeMismatch, value)
	}
}

// StringSlice accepts the input for STRING_ARRAY / BYTES_ARRAY columns:
// sequences of strings, no width promotion. BYTES_ARRAY elements are passed
// as their string form by the caller (the dispatcher routes them through
// the dictionary path); this function does not care which declared type
// requested it.
//
// Unlike the numeric promotions, there is no wider representation to widen
// into — the copy instead guards the interning loop that follows against
// the caller mutating or reusing its backing array mid-build, drawing the
// scratch slice from internal/pool the same way the numeric promotions do.
func StringSlice(value any) (out []string, release func(), err error) {
	v, ok := value.([]string)
	if !ok {
		return nil, noRelease, fmt.Errorf("%w: expected []string, got %T", errs.ErrTypeMismatch, value)
	}

	out, release = pool.GetStringSlice(len(v))
	copy(out, v)

	return out, release, nil
}
