package bcs

// Option builds a schema for an optional value of elem. On the wire it is a
// two-variant tagged union — {None: unit, Some: elem} in declaration order —
// so it reads and writes exactly like Enumeration would for that shape:
// 0x00 for absent, 0x01 followed by elem's encoding for present. The public
// view is transform-flattened to a plain Go pointer: nil means None, a
// non-nil pointer means Some.
func Option[T, I any](elem Schema[T, I]) Schema[*T, *I] {
	name := "option<" + elem.Name() + ">"
	elemCodec := elem.codec
	return Schema[*T, *I]{
		codec: Codec{
			Name: name,
			read: func(r *Reader) (any, error) {
				tag, err := r.ReadULEB128()
				if err != nil {
					return nil, err
				}
				switch tag {
				case 0:
					return (*T)(nil), nil
				case 1:
					inner, err := elemCodec.read(r)
					if err != nil {
						return nil, err
					}
					v, err := elem.toT(inner)
					if err != nil {
						return nil, err
					}
					return &v, nil
				default:
					return nil, &MalformedError{Reason: "option tag must be 0x00 or 0x01"}
				}
			},
			write: func(v any, w *Writer) error {
				ptr := v.(*I)
				if ptr == nil {
					return w.WriteULEB128(0)
				}
				if err := w.WriteULEB128(1); err != nil {
					return err
				}
				return elem.Write(*ptr, w)
			},
			validate: func(v any) error {
				ptr, ok := v.(*I)
				if !ok {
					return &ValidationError{Schema: name, Reason: "value must be a pointer"}
				}
				if ptr == nil {
					return nil
				}
				return elem.Validate(*ptr)
			},
			sizeHint: func(v any) (int, bool) {
				ptr, ok := v.(*I)
				if !ok {
					return 0, false
				}
				if ptr == nil {
					return 1, true
				}
				n, ok := elem.SizeHint(*ptr)
				if !ok {
					return 0, false
				}
				return 1 + n, true
			},
		},
		toT:   func(v any) (*T, error) { return v.(*T), nil },
		fromI: func(v *I) (any, error) { return v, nil },
	}
}
