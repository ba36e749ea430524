package bcs

import (
	"fmt"
	"math/big"
	"unicode/utf8"
)

// Bool is the BCS boolean schema: a single byte, 0x00 for false or 0x01 for
// true.
func Bool() Schema[bool, bool] {
	return newIdentitySchema[bool](Codec{
		Name: "bool",
		read: func(r *Reader) (any, error) { return r.ReadBool() },
		write: func(v any, w *Writer) error {
			return w.WriteBool(v.(bool))
		},
		validate: noValidate,
		sizeHint: func(any) (int, bool) { return 1, true },
	})
}

// U8 is the unsigned 8-bit integer schema.
func U8() Schema[uint8, uint8] {
	return newIdentitySchema[uint8](Codec{
		Name:     "u8",
		read:     func(r *Reader) (any, error) { return r.ReadU8() },
		write:    func(v any, w *Writer) error { return w.WriteU8(v.(uint8)) },
		validate: noValidate, // the Go type already bounds the range
		sizeHint: func(any) (int, bool) { return 1, true },
	})
}

// U16 is the unsigned 16-bit integer schema.
func U16() Schema[uint16, uint16] {
	return newIdentitySchema[uint16](Codec{
		Name:     "u16",
		read:     func(r *Reader) (any, error) { return r.ReadU16() },
		write:    func(v any, w *Writer) error { return w.WriteU16(v.(uint16)) },
		validate: noValidate,
		sizeHint: func(any) (int, bool) { return 2, true },
	})
}

// U32 is the unsigned 32-bit integer schema.
func U32() Schema[uint32, uint32] {
	return newIdentitySchema[uint32](Codec{
		Name:     "u32",
		read:     func(r *Reader) (any, error) { return r.ReadU32() },
		write:    func(v any, w *Writer) error { return w.WriteU32(v.(uint32)) },
		validate: noValidate,
		sizeHint: func(any) (int, bool) { return 4, true },
	})
}

// U64 is the unsigned 64-bit integer schema. The Go uint64 type is the
// canonical input/output representation.
func U64() Schema[uint64, uint64] {
	return newIdentitySchema[uint64](Codec{
		Name:     "u64",
		read:     func(r *Reader) (any, error) { return r.ReadU64() },
		write:    func(v any, w *Writer) error { return w.WriteU64(v.(uint64)) },
		validate: noValidate,
		sizeHint: func(any) (int, bool) { return 8, true },
	})
}

func bigIntSchema(name string, bits uint, width int, read func(*Reader) (*big.Int, error), write func(*Writer, *big.Int) error) Schema[*big.Int, *big.Int] {
	return newIdentitySchema[*big.Int](Codec{
		Name: name,
		read: func(r *Reader) (any, error) {
			v, err := read(r)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		write: func(v any, w *Writer) error { return write(w, v.(*big.Int)) },
		validate: func(v any) error {
			n, ok := v.(*big.Int)
			if !ok || n == nil {
				return &ValidationError{Schema: name, Reason: "value must be a non-nil *big.Int"}
			}
			if n.Sign() < 0 {
				return &ValidationError{Schema: name, Reason: "value must be non-negative"}
			}
			if n.BitLen() > int(bits) {
				return &ValidationError{Schema: name, Reason: fmt.Sprintf("value exceeds %d bits", bits)}
			}
			return nil
		},
		sizeHint: func(any) (int, bool) { return width, true },
	})
}

// U128 is the unsigned 128-bit integer schema. Input and output are
// *big.Int, since a native Go integer type can't hold the full range.
func U128() Schema[*big.Int, *big.Int] {
	return bigIntSchema("u128", 128, 16, (*Reader).ReadU128, (*Writer).WriteU128)
}

// U256 is the unsigned 256-bit integer schema.
func U256() Schema[*big.Int, *big.Int] {
	return bigIntSchema("u256", 256, 32, (*Reader).ReadU256, (*Writer).WriteU256)
}

// ULEB128Value exposes the raw ULEB128 codec as a schema in its own right,
// for callers that need an explicit variable-length integer outside of a
// vector length or enum discriminant.
func ULEB128Value() Schema[uint32, uint32] {
	return newIdentitySchema[uint32](Codec{
		Name:     "uleb128",
		read:     func(r *Reader) (any, error) { return r.ReadULEB128() },
		write:    func(v any, w *Writer) error { return w.WriteULEB128(v.(uint32)) },
		validate: noValidate, // uint32 already excludes negative input
		sizeHint: noSizeHint,
	})
}

// FixedBytesOf is a fixed-size byte blob with no length prefix. Input must
// have exactly n bytes.
func FixedBytesOf(n int) Schema[[]byte, []byte] {
	name := fmt.Sprintf("bytes(%d)", n)
	return newIdentitySchema[[]byte](Codec{
		Name: name,
		read: func(r *Reader) (any, error) { return r.ReadFixedBytes(n) },
		write: func(v any, w *Writer) error {
			return w.WriteFixedBytes(v.([]byte))
		},
		validate: func(v any) error {
			b, _ := v.([]byte)
			if len(b) != n {
				return &ValidationError{Schema: name, Reason: fmt.Sprintf("expected %d bytes, got %d", n, len(b))}
			}
			return nil
		},
		sizeHint: func(any) (int, bool) { return n, true },
	})
}

// VarBytes is a ULEB128-length-prefixed byte blob of unspecified length.
func VarBytes() Schema[[]byte, []byte] {
	return newIdentitySchema[[]byte](Codec{
		Name:     "bytes",
		read:     func(r *Reader) (any, error) { return r.ReadBytes() },
		write:    func(v any, w *Writer) error { return w.WriteBytes(v.([]byte)) },
		validate: noValidate,
		sizeHint: noSizeHint,
	})
}

// StringValue is a UTF-8 string, encoded on the wire as vector(u8) over its
// UTF-8 bytes.
func StringValue() Schema[string, string] {
	return newIdentitySchema[string](Codec{
		Name:  "string",
		read:  func(r *Reader) (any, error) { return r.ReadString() },
		write: func(v any, w *Writer) error { return w.WriteString(v.(string)) },
		validate: func(v any) error {
			s, ok := v.(string)
			if !ok || !utf8.ValidString(s) {
				return &ValidationError{Schema: "string", Reason: "value must be a valid UTF-8 string"}
			}
			return nil
		},
		sizeHint: noSizeHint,
	})
}
