package bcs

import (
	"encoding/binary"
	"math/big"
)

// WriterOptions configures the growth policy of a Writer.
type WriterOptions struct {
	// InitialSize is the buffer size allocated up front.
	InitialSize int
	// MaxSize caps how large the buffer is allowed to grow. A serialize call
	// whose output would exceed MaxSize fails with a CapacityError.
	MaxSize int
	// GrowChunk is the increment applied each time the buffer must grow,
	// bounded by MaxSize.
	GrowChunk int
}

// DefaultWriterOptions matches the defaults in the wire-format specification:
// a 1024-byte buffer that, by default, is also its own ceiling. Callers that
// need to serialize larger values must raise MaxSize explicitly.
var DefaultWriterOptions = WriterOptions{
	InitialSize: 1024,
	MaxSize:     1024,
	GrowChunk:   1024,
}

func (o WriterOptions) normalize() WriterOptions {
	if o.InitialSize <= 0 {
		o.InitialSize = DefaultWriterOptions.InitialSize
	}
	if o.MaxSize <= 0 {
		o.MaxSize = o.InitialSize
	}
	if o.GrowChunk <= 0 {
		o.GrowChunk = DefaultWriterOptions.GrowChunk
	}
	if o.MaxSize < o.InitialSize {
		o.MaxSize = o.InitialSize
	}
	return o
}

// Writer is a cursor over a growable byte buffer. Growth happens in
// GrowChunk increments up to MaxSize; a write that would need the buffer to
// grow past MaxSize fails with a CapacityError rather than silently
// truncating or wrapping. A Writer is owned by exactly one caller for the
// lifetime of a single serialize call.
type Writer struct {
	buf  []byte
	pos  int
	opts WriterOptions
}

// NewWriter creates a Writer with the given options. A zero InitialSize or
// GrowChunk falls back to DefaultWriterOptions; a zero MaxSize, or one below
// InitialSize, becomes InitialSize.
func NewWriter(opts WriterOptions) *Writer {
	opts = opts.normalize()
	return &Writer{
		buf:  make([]byte, opts.InitialSize),
		opts: opts,
	}
}

// Pos returns the number of bytes written so far.
func (w *Writer) Pos() int { return w.pos }

// Bytes returns the bytes written so far. The returned slice aliases the
// Writer's internal buffer and must be copied before the Writer is reused.
func (w *Writer) Bytes() []byte { return w.buf[:w.pos] }

// ensure grows the buffer, in GrowChunk increments up to MaxSize, so that at
// least n more bytes can be written at the current position.
func (w *Writer) ensure(n int) error {
	need := w.pos + n
	if need <= len(w.buf) {
		return nil
	}
	if need > w.opts.MaxSize {
		return &CapacityError{MaxSize: w.opts.MaxSize, Needed: need, Position: w.pos}
	}
	newSize := len(w.buf)
	for newSize < need {
		newSize += w.opts.GrowChunk
		if newSize > w.opts.MaxSize {
			newSize = w.opts.MaxSize
		}
	}
	if newSize < need {
		return &CapacityError{MaxSize: w.opts.MaxSize, Needed: need, Position: w.pos}
	}
	grown := make([]byte, newSize)
	copy(grown, w.buf[:w.pos])
	w.buf = grown
	return nil
}

// WriteBool writes a single-byte boolean: 0x00 for false, 0x01 for true.
func (w *Writer) WriteBool(v bool) error {
	if err := w.ensure(1); err != nil {
		return err
	}
	if v {
		w.buf[w.pos] = 0x01
	} else {
		w.buf[w.pos] = 0x00
	}
	w.pos++
	return nil
}

// WriteU8 writes an unsigned 8-bit integer.
func (w *Writer) WriteU8(v uint8) error {
	if err := w.ensure(1); err != nil {
		return err
	}
	w.buf[w.pos] = v
	w.pos++
	return nil
}

// WriteU16 writes a little-endian unsigned 16-bit integer.
func (w *Writer) WriteU16(v uint16) error {
	if err := w.ensure(2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(w.buf[w.pos:], v)
	w.pos += 2
	return nil
}

// WriteU32 writes a little-endian unsigned 32-bit integer.
func (w *Writer) WriteU32(v uint32) error {
	if err := w.ensure(4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(w.buf[w.pos:], v)
	w.pos += 4
	return nil
}

// WriteU64 writes a little-endian unsigned 64-bit integer.
func (w *Writer) WriteU64(v uint64) error {
	if err := w.ensure(8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(w.buf[w.pos:], v)
	w.pos += 8
	return nil
}

// writeBigLE writes v as n little-endian bytes, failing if v does not fit.
func (w *Writer) writeBigLE(v *big.Int, n int) error {
	be := v.Bytes() // big-endian, no leading zero byte
	if len(be) > n {
		return &ValidationError{Schema: "uint", Reason: "value does not fit in the target width"}
	}
	if err := w.ensure(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		w.buf[w.pos+i] = 0
	}
	for i, b := range be {
		w.buf[w.pos+n-1-i] = b
	}
	w.pos += n
	return nil
}

// WriteU128 writes a little-endian 128-bit unsigned integer.
func (w *Writer) WriteU128(v *big.Int) error { return w.writeBigLE(v, 16) }

// WriteU256 writes a little-endian 256-bit unsigned integer.
func (w *Writer) WriteU256(v *big.Int) error { return w.writeBigLE(v, 32) }

// WriteULEB128 writes v as a ULEB128 variable-length integer, used for
// sequence lengths and enum discriminants.
func (w *Writer) WriteULEB128(v uint32) error {
	var tmp [maxULEB128Bytes]byte
	enc := encodeULEB128(tmp[:0], v)
	if err := w.ensure(len(enc)); err != nil {
		return err
	}
	copy(w.buf[w.pos:], enc)
	w.pos += len(enc)
	return nil
}

// WriteBytes writes a ULEB128 length prefix followed by v.
func (w *Writer) WriteBytes(v []byte) error {
	if err := w.WriteULEB128(uint32(len(v))); err != nil {
		return err
	}
	return w.WriteFixedBytes(v)
}

// WriteFixedBytes writes v with no length prefix.
func (w *Writer) WriteFixedBytes(v []byte) error {
	if err := w.ensure(len(v)); err != nil {
		return err
	}
	copy(w.buf[w.pos:], v)
	w.pos += len(v)
	return nil
}

// WriteString writes v as a ULEB128-length-prefixed UTF-8 string.
func (w *Writer) WriteString(v string) error {
	return w.WriteBytes([]byte(v))
}

// WriteVec writes a ULEB128 length followed by cb(w, v, i, len) for each
// element of values. It is the primitive behind the Vector combinator.
func WriteVec[T any](w *Writer, values []T, cb func(*Writer, T, int, int) error) error {
	if err := w.WriteULEB128(uint32(len(values))); err != nil {
		return err
	}
	for i, v := range values {
		if err := cb(w, v, i, len(values)); err != nil {
			return err
		}
	}
	return nil
}

// WriteFixed writes the first n elements of values with no length prefix.
// Callers needing strict length validation should check len(values) == n
// before calling; WriteFixed itself does not re-validate.
func WriteFixed[T any](w *Writer, values []T, n int, cb func(*Writer, T, int, int) error) error {
	for i := 0; i < n; i++ {
		if err := cb(w, values[i], i, n); err != nil {
			return err
		}
	}
	return nil
}
