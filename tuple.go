package bcs

import "fmt"

// Tuple builds a schema for a fixed, positionally-ordered sequence of
// heterogeneous elements with no length prefix: elems[0]'s encoding,
// elems[1]'s encoding, and so on. Both read and write iterate in
// declaration order. Values are represented as []any, one entry per
// element, in the same order as elems.
func Tuple(elems []Codec) Codec {
	name := "tuple("
	for i, e := range elems {
		if i > 0 {
			name += ", "
		}
		name += e.Name
	}
	name += ")"

	return Codec{
		Name: name,
		read: func(r *Reader) (any, error) {
			out := make([]any, len(elems))
			for i, e := range elems {
				v, err := e.read(r)
				if err != nil {
					return nil, err
				}
				out[i] = v
			}
			return out, nil
		},
		write: func(v any, w *Writer) error {
			values, ok := v.([]any)
			if !ok {
				return &ValidationError{Schema: name, Reason: "value must be a []any of matching arity"}
			}
			for i, e := range elems {
				if err := e.Write(values[i], w); err != nil {
					return err
				}
			}
			return nil
		},
		validate: func(v any) error {
			values, ok := v.([]any)
			if !ok {
				return &ValidationError{Schema: name, Reason: "value must be a []any"}
			}
			if len(values) != len(elems) {
				return &ValidationError{Schema: name, Reason: fmt.Sprintf("expected %d elements, got %d", len(elems), len(values))}
			}
			for i, e := range elems {
				if err := e.Validate(values[i]); err != nil {
					return &ValidationError{Schema: name, Reason: fmt.Sprintf("element %d: %v", i, err)}
				}
			}
			return nil
		},
		sizeHint: func(v any) (int, bool) {
			values, ok := v.([]any)
			if !ok || len(values) != len(elems) {
				return 0, false
			}
			total := 0
			for i, e := range elems {
				n, ok := e.SizeHint(values[i])
				if !ok {
					return 0, false
				}
				total += n
			}
			return total, true
		},
	}
}
