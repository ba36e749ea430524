package bcs

import "fmt"

// Vector builds a schema for a length-prefixed sequence of elem: ULEB128(len)
// followed by len encodings of elem, with no per-element separator.
func Vector[T, I any](elem Schema[T, I]) Schema[[]T, []I] {
	name := "vector<" + elem.Name() + ">"
	elemCodec := elem.codec
	return Schema[[]T, []I]{
		codec: Codec{
			Name: name,
			read: func(r *Reader) (any, error) {
				return ReadVec(r, func(r *Reader) (T, error) {
					v, err := elemCodec.read(r)
					if err != nil {
						var zero T
						return zero, err
					}
					return elem.toT(v)
				})
			},
			write: func(v any, w *Writer) error {
				values := v.([]I)
				return WriteVec(w, values, func(w *Writer, value I, i, n int) error {
					return elem.Write(value, w)
				})
			},
			validate: func(v any) error {
				values, ok := v.([]I)
				if !ok {
					return &ValidationError{Schema: name, Reason: "value must be a slice"}
				}
				for i, value := range values {
					if err := elem.Validate(value); err != nil {
						return &ValidationError{Schema: name, Reason: fmt.Sprintf("element %d: %v", i, err)}
					}
				}
				return nil
			},
			sizeHint: func(v any) (int, bool) {
				values, ok := v.([]I)
				if !ok {
					return 0, false
				}
				total := 0
				for _, value := range values {
					n, ok := elem.SizeHint(value)
					if !ok {
						return 0, false
					}
					total += n
				}
				// ULEB128 length prefix width depends on len(values); 1 byte
				// suffices below 128 elements, which is the common case, but
				// compute it precisely rather than assume.
				total += uleb128Width(uint32(len(values)))
				return total, true
			},
		},
		toT:   func(v any) ([]T, error) { return v.([]T), nil },
		fromI: func(v []I) (any, error) { return v, nil },
	}
}

func uleb128Width(v uint32) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// FixedArray builds a schema for exactly n encodings of elem with no length
// prefix. Writing a value whose length differs from n is a ValidationError
// rather than being silently truncated or zero-padded.
func FixedArray[T, I any](n int, elem Schema[T, I]) Schema[[]T, []I] {
	name := fmt.Sprintf("fixed_array<%s, %d>", elem.Name(), n)
	elemCodec := elem.codec
	return Schema[[]T, []I]{
		codec: Codec{
			Name: name,
			read: func(r *Reader) (any, error) {
				return ReadFixed(r, n, func(r *Reader) (T, error) {
					v, err := elemCodec.read(r)
					if err != nil {
						var zero T
						return zero, err
					}
					return elem.toT(v)
				})
			},
			write: func(v any, w *Writer) error {
				values := v.([]I)
				return WriteFixed(w, values, n, func(w *Writer, value I, i, cnt int) error {
					return elem.Write(value, w)
				})
			},
			validate: func(v any) error {
				values, ok := v.([]I)
				if !ok {
					return &ValidationError{Schema: name, Reason: "value must be a slice"}
				}
				if len(values) != n {
					return &ValidationError{Schema: name, Reason: fmt.Sprintf("expected %d elements, got %d", n, len(values))}
				}
				for i, value := range values {
					if err := elem.Validate(value); err != nil {
						return &ValidationError{Schema: name, Reason: fmt.Sprintf("element %d: %v", i, err)}
					}
				}
				return nil
			},
			sizeHint: func(v any) (int, bool) {
				values, ok := v.([]I)
				if !ok || len(values) != n {
					return 0, false
				}
				total := 0
				for _, value := range values {
					sz, ok := elem.SizeHint(value)
					if !ok {
						return 0, false
					}
					total += sz
				}
				return total, true
			},
		},
		toT:   func(v any) ([]T, error) { return v.([]T), nil },
		fromI: func(v []I) (any, error) { return v, nil },
	}
}
