// Package varregion implements the variable region writer: the append-only
// byte stream holding the expansions of variable-length cells — BIG_DECIMAL
// magnitudes, raw BYTES, OBJECT tag+payload, and array elements. Every
// write records its own starting offset, which is always the stream's size
// at the moment the value begins, since the region never rewrites or
// truncates.
//
// Backed by the same pooled ByteBuffer as internal/fixedregion, sized for
// the larger payloads a variable region typically accumulates.
package varregion

import (
	"math/big"

	"github.com/queryshard/datablock/endian"
	"github.com/queryshard/datablock/internal/pool"
)

// Writer appends variable-length cell payloads to an in-memory buffer and
// reports the (offset, length) pair each write occupies.
type Writer struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewWriter creates a Writer using the module's variable-region buffer pool.
func NewWriter() *Writer {
	return &Writer{
		buf:    pool.GetVarRegionBuffer(),
		engine: endian.GetBigEndianEngine(),
	}
}

// Size returns the current length of the variable region. A write's offset
// is always Size() taken immediately before that write.
func (w *Writer) Size() int {
	return w.buf.Len()
}

// WriteBytes appends raw bytes as-is (BYTES cells) and returns the
// (offset, length) pair for the fixed-region indirection.
func (w *Writer) WriteBytes(data []byte) (offset, length int) {
	offset = w.Size()
	w.buf.MustWrite(data)

	return offset, len(data)
}

// WriteObject appends a 4-byte type tag followed by the serialized payload
// (OBJECT cells). The length returned for the fixed region covers only the
// payload, not the 4-byte tag — decoders read the tag first, then length
// bytes.
func (w *Writer) WriteObject(typeTag int32, payload []byte) (offset, length int) {
	offset = w.Size()
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(typeTag)) //nolint:gosec
	w.buf.MustWrite(payload)

	return offset, len(payload)
}

// WriteBigDecimal appends the sign-magnitude encoding of a decimal value:
// a 4-byte scale followed by the two's-complement big-endian magnitude
// bytes of unscaled.
func (w *Writer) WriteBigDecimal(unscaled *big.Int, scale int32) (offset, length int) {
	offset = w.Size()
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(scale)) //nolint:gosec
	w.buf.MustWrite(twosComplementBytes(unscaled))

	return offset, w.Size() - offset
}

// WriteInt32Array appends a 4-byte element count followed by the elements,
// each big-endian (INT_ARRAY, BOOLEAN_ARRAY columns).
func (w *Writer) WriteInt32Array(elems []int32) (offset, length int) {
	offset = w.Size()
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(len(elems))) //nolint:gosec
	for _, e := range elems {
		w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(e)) //nolint:gosec
	}

	return offset, w.Size() - offset
}

// WriteInt64Array appends a 4-byte element count followed by the elements,
// each big-endian (LONG_ARRAY, TIMESTAMP_ARRAY columns).
func (w *Writer) WriteInt64Array(elems []int64) (offset, length int) {
	offset = w.Size()
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(len(elems))) //nolint:gosec
	for _, e := range elems {
		w.buf.B = w.engine.AppendUint64(w.buf.B, uint64(e)) //nolint:gosec
	}

	return offset, w.Size() - offset
}

// WriteFloat32Array appends a 4-byte element count followed by the
// elements, each IEEE-754 binary32 big-endian (FLOAT_ARRAY columns).
func (w *Writer) WriteFloat32Array(elems []float32) (offset, length int) {
	offset = w.Size()
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(len(elems))) //nolint:gosec
	for _, e := range elems {
		w.buf.B = w.engine.AppendUint32(w.buf.B, float32bits(e))
	}

	return offset, w.Size() - offset
}

// WriteFloat64Array appends a 4-byte element count followed by the
// elements, each IEEE-754 binary64 big-endian (DOUBLE_ARRAY columns).
func (w *Writer) WriteFloat64Array(elems []float64) (offset, length int) {
	offset = w.Size()
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(len(elems))) //nolint:gosec
	for _, e := range elems {
		w.buf.B = w.engine.AppendUint64(w.buf.B, float64bits(e))
	}

	return offset, w.Size() - offset
}

// WriteDictionaryIDArray appends a 4-byte element count followed by one
// 4-byte dictionary id per element (STRING_ARRAY columns, and BYTES_ARRAY
// via its dictionary routing).
func (w *Writer) WriteDictionaryIDArray(ids []int32) (offset, length int) {
	offset = w.Size()
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(len(ids))) //nolint:gosec
	for _, id := range ids {
		w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(id)) //nolint:gosec
	}

	return offset, w.Size() - offset
}

// Bytes returns the accumulated variable region. The returned slice shares
// the writer's underlying buffer and must not be retained past Release.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Release returns the underlying buffer to its pool. The Writer must not be
// used after calling Release.
func (w *Writer) Release() {
	pool.PutVarRegionBuffer(w.buf)
	w.buf = nil
}
