package bcs

import (
	"encoding/binary"
	"math/big"
	"unicode/utf8"
)

// Reader is a cursor over an immutable byte slice. Every Read* method
// advances the cursor by the width it consumes; the cursor never decreases
// and never exceeds len(data). A Reader is owned by exactly one caller for
// the lifetime of a single parse call and must not outlive the slice it
// borrows.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps data for sequential reading. The Reader does not copy
// data; the caller must not mutate it while the Reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current cursor position.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

func (r *Reader) need(n int) error {
	if n < 0 || r.pos+n > len(r.data) {
		return &ShortBufferError{Want: n, Have: r.Remaining()}
	}
	return nil
}

// ReadBool reads a single-byte boolean: 0x00 is false, 0x01 is true; any
// other value is malformed.
func (r *Reader) ReadBool() (bool, error) {
	if err := r.need(1); err != nil {
		return false, err
	}
	b := r.data[r.pos]
	r.pos++
	switch b {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, &MalformedError{Reason: "bool byte must be 0x00 or 0x01"}
	}
}

// ReadU8 reads an unsigned 8-bit integer.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

// ReadU16 reads a little-endian unsigned 16-bit integer.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

// ReadU32 reads a little-endian unsigned 32-bit integer.
func (r *Reader) ReadU32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadU64 reads a little-endian unsigned 64-bit integer.
func (r *Reader) ReadU64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return v, nil
}

// readBigLE reads n little-endian bytes and returns them as an unsigned
// big.Int, reversing them into a temporary big-endian buffer first.
func (r *Reader) readBigLE(n int) (*big.Int, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		buf[n-1-i] = r.data[r.pos+i]
	}
	r.pos += n
	return new(big.Int).SetBytes(buf), nil
}

// ReadU128 reads a little-endian 128-bit unsigned integer.
func (r *Reader) ReadU128() (*big.Int, error) { return r.readBigLE(16) }

// ReadU256 reads a little-endian 256-bit unsigned integer.
func (r *Reader) ReadU256() (*big.Int, error) { return r.readBigLE(32) }

// ReadULEB128 reads a ULEB128-encoded unsigned integer, used for sequence
// lengths and enum discriminants.
func (r *Reader) ReadULEB128() (uint32, error) {
	v, n, err := decodeULEB128(r.data, r.pos)
	if err != nil {
		return 0, err
	}
	r.pos += n
	return v, nil
}

// ReadBytes reads a byte slice prefixed with its ULEB128 length. The
// returned slice is a fresh copy, safe to retain past the Reader's lifetime.
func (r *Reader) ReadBytes() ([]byte, error) {
	length, err := r.ReadULEB128()
	if err != nil {
		return nil, err
	}
	return r.ReadFixedBytes(int(length))
}

// ReadFixedBytes reads exactly n raw bytes with no length prefix.
func (r *Reader) ReadFixedBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.data[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

// ReadString reads a ULEB128-length-prefixed UTF-8 string.
func (r *Reader) ReadString() (string, error) {
	raw, err := r.ReadBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", &MalformedError{Reason: "string bytes are not valid UTF-8"}
	}
	return string(raw), nil
}

// ReadVec reads a ULEB128 length followed by that many elements, each
// produced by cb. It is the primitive behind the Vector combinator.
func ReadVec[T any](r *Reader, cb func(*Reader) (T, error)) ([]T, error) {
	length, err := r.ReadULEB128()
	if err != nil {
		return nil, err
	}
	out := make([]T, length)
	for i := uint32(0); i < length; i++ {
		v, err := cb(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadFixed reads exactly n elements, each produced by cb, with no length
// prefix. It is the primitive behind the FixedArray combinator.
func ReadFixed[T any](r *Reader, n int, cb func(*Reader) (T, error)) ([]T, error) {
	out := make([]T, n)
	for i := 0; i < n; i++ {
		v, err := cb(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
