package bcs

import "fmt"

// Field describes one declaration-ordered field of a Struct schema.
type Field struct {
	Name  string
	Codec Codec
}

// StructValue is the tagged dynamic value Struct schemas parse into: an
// ordered sequence of (name, value) pairs mirroring the schema's
// declaration order. Go has no way to generate one record type per schema
// without a code-generation step, so a parsed struct is represented this way
// rather than as a plain map, which would lose field order.
type StructValue struct {
	Name   string
	Fields []FieldValue
}

// FieldValue is one (name, value) pair of a StructValue.
type FieldValue struct {
	Name  string
	Value any
}

// Get returns the value of the named field and whether it was present.
func (s StructValue) Get(name string) (any, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// structInput is the duck-typed shape Struct.Write accepts: a lookup by
// field name. Both map[string]any and StructValue satisfy it via small
// adapters below.
type structInput interface {
	lookup(name string) (any, bool)
}

type mapInput map[string]any

func (m mapInput) lookup(name string) (any, bool) { v, ok := m[name]; return v, ok }

type structValueInput StructValue

func (s structValueInput) lookup(name string) (any, bool) { return StructValue(s).Get(name) }

func asStructInput(v any) (structInput, error) {
	switch t := v.(type) {
	case map[string]any:
		return mapInput(t), nil
	case StructValue:
		return structValueInput(t), nil
	default:
		return nil, &ValidationError{Schema: "struct", Reason: "value must be a map[string]any or StructValue"}
	}
}

// Struct builds a schema for a struct with the given declaration-ordered
// fields. Fields are always written in declaration order regardless of the
// order they appear in the caller's input object; on parse, the result is a
// StructValue whose Fields are in that same declaration order. Input may be
// a map[string]any or a StructValue; a missing field is a ValidationError,
// extra input fields are ignored.
func Struct(name string, fields []Field) Codec {
	codecName := name
	return Codec{
		Name: codecName,
		read: func(r *Reader) (any, error) {
			out := StructValue{Name: name, Fields: make([]FieldValue, len(fields))}
			for i, f := range fields {
				v, err := f.Codec.read(r)
				if err != nil {
					return nil, fmt.Errorf("bcs: struct %s field %s: %w", name, f.Name, err)
				}
				out.Fields[i] = FieldValue{Name: f.Name, Value: v}
			}
			return out, nil
		},
		write: func(v any, w *Writer) error {
			in, err := asStructInput(v)
			if err != nil {
				return err
			}
			for _, f := range fields {
				fv, ok := in.lookup(f.Name)
				if !ok {
					return &ValidationError{Schema: codecName, Reason: "missing required field " + f.Name}
				}
				if err := f.Codec.Write(fv, w); err != nil {
					return fmt.Errorf("bcs: struct %s field %s: %w", name, f.Name, err)
				}
			}
			return nil
		},
		validate: func(v any) error {
			in, err := asStructInput(v)
			if err != nil {
				return err
			}
			for _, f := range fields {
				fv, ok := in.lookup(f.Name)
				if !ok {
					return &ValidationError{Schema: codecName, Reason: "missing required field " + f.Name}
				}
				if err := f.Codec.Validate(fv); err != nil {
					return err
				}
			}
			return nil
		},
		sizeHint: func(v any) (int, bool) {
			in, err := asStructInput(v)
			if err != nil {
				return 0, false
			}
			total := 0
			for _, f := range fields {
				fv, ok := in.lookup(f.Name)
				if !ok {
					return 0, false
				}
				n, ok := f.Codec.SizeHint(fv)
				if !ok {
					return 0, false
				}
				total += n
			}
			return total, true
		},
	}
}
