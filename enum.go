package bcs

import "fmt"

// unitCodec is used for enum variants declared with no payload: it reads
// and writes zero bytes. Enumeration uses it in place of a variant's zero
// Codec.
var unitCodec = Codec{
	Name:     "unit",
	read:     func(*Reader) (any, error) { return struct{}{}, nil },
	write:    func(any, *Writer) error { return nil },
	validate: noValidate,
	sizeHint: func(any) (int, bool) { return 0, true },
}

// Variant describes one declaration-ordered case of an Enumeration schema.
// Its discriminant is its position in the slice passed to Enumeration, not
// any value stored here. Use UnitVariant, or leave Codec as the zero Codec,
// for a payload-less variant.
type Variant struct {
	Name  string
	Codec Codec
}

// UnitVariant is a convenience constructor for a payload-less variant.
func UnitVariant(name string) Variant { return Variant{Name: name, Codec: unitCodec} }

// EnumValue is the tagged dynamic value Enumeration schemas parse into: the
// chosen variant's name and its decoded payload (struct{}{} for a unit
// variant). Kind names the chosen discriminant.
type EnumValue struct {
	Kind  string
	Value any
}

// variantOf resolves the input Enumeration's write accepts: an EnumValue,
// or a map[string]any with exactly one key matching a
// known variant name. A map[string]any with more than one matching key, or
// an EnumValue naming an unknown variant, is a ValidationError.
func variantOf(name string, variants []Variant, v any) (idx int, payload any, err error) {
	switch t := v.(type) {
	case EnumValue:
		for i, variant := range variants {
			if variant.Name == t.Kind {
				return i, t.Value, nil
			}
		}
		return 0, nil, &ValidationError{Schema: name, Reason: "unknown enum variant " + t.Kind}
	case map[string]any:
		matched := -1
		var payload any
		for i, variant := range variants {
			val, ok := t[variant.Name]
			if !ok {
				continue
			}
			if matched != -1 {
				return 0, nil, &ValidationError{Schema: name, Reason: "more than one variant key present"}
			}
			matched = i
			payload = val
		}
		if matched == -1 {
			return 0, nil, &ValidationError{Schema: name, Reason: "no known variant key present"}
		}
		return matched, payload, nil
	default:
		return 0, nil, &ValidationError{Schema: name, Reason: "value must be an EnumValue or map[string]any with exactly one variant key"}
	}
}

// Enumeration builds a schema for a tagged union: a ULEB128 discriminant
// (the variant's position in variants, i.e. declaration order — the
// first-defined variant is index 0) followed by that variant's payload, if
// it is not a unit variant.
func Enumeration(name string, variants []Variant) Codec {
	variants = append([]Variant(nil), variants...)
	for i := range variants {
		if variants[i].Codec.read == nil {
			variants[i].Codec = unitCodec
		}
	}
	return Codec{
		Name: name,
		read: func(r *Reader) (any, error) {
			tag, err := r.ReadULEB128()
			if err != nil {
				return nil, err
			}
			if int(tag) >= len(variants) {
				return nil, &MalformedError{Reason: fmt.Sprintf("unknown discriminant %d for enum %s", tag, name)}
			}
			variant := variants[tag]
			payload, err := variant.Codec.read(r)
			if err != nil {
				return nil, fmt.Errorf("bcs: enum %s variant %s: %w", name, variant.Name, err)
			}
			return EnumValue{Kind: variant.Name, Value: payload}, nil
		},
		write: func(v any, w *Writer) error {
			idx, payload, err := variantOf(name, variants, v)
			if err != nil {
				return err
			}
			if err := w.WriteULEB128(uint32(idx)); err != nil {
				return err
			}
			if err := variants[idx].Codec.Write(payload, w); err != nil {
				return fmt.Errorf("bcs: enum %s variant %s: %w", name, variants[idx].Name, err)
			}
			return nil
		},
		validate: func(v any) error {
			idx, payload, err := variantOf(name, variants, v)
			if err != nil {
				return err
			}
			return variants[idx].Codec.Validate(payload)
		},
		sizeHint: func(v any) (int, bool) {
			idx, payload, err := variantOf(name, variants, v)
			if err != nil {
				return 0, false
			}
			n, ok := variants[idx].Codec.SizeHint(payload)
			if !ok {
				return 0, false
			}
			return uleb128Width(uint32(idx)) + n, true
		},
	}
}
