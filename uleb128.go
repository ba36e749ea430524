package bcs

// ULEB128 (unsigned little-endian base-128) is used for sequence lengths and
// enum discriminants throughout BCS. Every group carries 7 data bits with the
// continuation bit in the MSB; decoding stops at the first byte whose MSB is
// clear.

// maxULEB128Bytes bounds a length/discriminant to a 32-bit value: 5 groups of
// 7 bits cover 35 bits, comfortably more than 32, and match the widths the
// upstream BCS spec actually uses for lengths and tags.
const maxULEB128Bytes = 5

// encodeULEB128 appends the ULEB128 encoding of v to dst and returns the
// extended slice.
func encodeULEB128(dst []byte, v uint32) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		dst = append(dst, b)
		if v == 0 {
			return dst
		}
	}
}

// decodeULEB128 reads a ULEB128 value from src starting at offset and returns
// the decoded value and the number of bytes consumed. It fails if the value
// does not terminate within maxULEB128Bytes bytes, does not fit in 32 bits,
// or the input is too short.
func decodeULEB128(src []byte, offset int) (value uint32, consumed int, err error) {
	var shift uint
	for consumed = 0; consumed < maxULEB128Bytes; consumed++ {
		if offset+consumed >= len(src) {
			return 0, 0, &ShortBufferError{Want: consumed + 1, Have: len(src) - offset}
		}
		b := src[offset+consumed]
		if shift == 28 && b&0x70 != 0 {
			return 0, 0, &MalformedError{Reason: "ULEB128 value exceeds 32 bits"}
		}
		value |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return value, consumed + 1, nil
		}
		shift += 7
	}
	return 0, 0, &MalformedError{Reason: "ULEB128 value did not terminate within 5 bytes"}
}
