// Package fixedregion implements the fixed-region writer: the byte stream
// holding one inline record per cell, written strictly in the order the
// dispatcher requests it.
//
// Backed by a pooled, amortized-growth ByteBuffer (internal/pool), with
// every multi-byte value written big-endian via the endian.EndianEngine
// abstraction, locked to endian.GetBigEndianEngine() since this wire format
// is always big-endian.
package fixedregion

import (
	"github.com/queryshard/datablock/endian"
	"github.com/queryshard/datablock/internal/pool"
)

// Writer appends fixed-width cell payloads to an in-memory buffer.
type Writer struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewWriter creates a Writer using the module's fixed-region buffer pool.
func NewWriter() *Writer {
	return &Writer{
		buf:    pool.GetFixedRegionBuffer(),
		engine: endian.GetBigEndianEngine(),
	}
}

// WriteInt32 appends a big-endian int32 (INT cells).
func (w *Writer) WriteInt32(v int32) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(v)) //nolint:gosec
}

// WriteInt64 appends a big-endian int64 (LONG cells).
func (w *Writer) WriteInt64(v int64) {
	w.buf.B = w.engine.AppendUint64(w.buf.B, uint64(v)) //nolint:gosec
}

// WriteFloat32 appends a big-endian IEEE-754 binary32 (FLOAT cells).
func (w *Writer) WriteFloat32(v float32) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, float32bits(v))
}

// WriteFloat64 appends a big-endian IEEE-754 binary64 (DOUBLE cells).
func (w *Writer) WriteFloat64(v float64) {
	w.buf.B = w.engine.AppendUint64(w.buf.B, float64bits(v))
}

// WriteIndirect appends the (offset:int32, length:int32) pair used by every
// variable-indirect cell type: BIG_DECIMAL, BYTES, OBJECT, and every
// *_ARRAY column.
func (w *Writer) WriteIndirect(offset, length int) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(offset)) //nolint:gosec
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(length)) //nolint:gosec
}

// WriteDictionaryID appends the 4-byte dictionary id used by STRING cells.
func (w *Writer) WriteDictionaryID(id int32) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(id)) //nolint:gosec
}

// Bytes returns the accumulated fixed region. The returned slice shares the
// writer's underlying buffer and must not be retained past Release.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Release returns the underlying buffer to its pool. The Writer must not be
// used after calling Release.
func (w *Writer) Release() {
	pool.PutFixedRegionBuffer(w.buf)
	w.buf = nil
}
