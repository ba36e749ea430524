package bcs

// MapEntry is one key/value pair of a MapValue.
type MapEntry struct {
	Key   any
	Value any
}

// MapValue is the value Map schemas parse into: an ordered slice of
// key/value pairs rather than a native Go map. map(K, V) serializes exactly
// as vector(tuple(K, V)): callers choose the order and the codec must
// round-trip it byte-for-byte. A native Go map has no stable iteration
// order, so decoding into one here would make re-encoding the parsed value
// produce different bytes than the original almost every time; an ordered
// slice is the representation that actually satisfies the round-trip.
type MapValue []MapEntry

// Get returns the value associated with key, using == for comparison, and
// whether it was found. Intended for simple comparable key types; callers
// needing custom equality should range over the MapValue themselves.
func (m MapValue) Get(key any) (any, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Map builds a schema for a sequence of key/value pairs, encoded exactly as
// vector(tuple(key, value)): a ULEB128 count followed by that many
// (key, value) encodings.
func Map(key, value Codec) Codec {
	pair := Tuple([]Codec{key, value})
	vecName := "map<" + key.Name + ", " + value.Name + ">"
	return Codec{
		Name: vecName,
		read: func(r *Reader) (any, error) {
			entries, err := ReadVec(r, func(r *Reader) (MapEntry, error) {
				v, err := pair.read(r)
				if err != nil {
					return MapEntry{}, err
				}
				kv := v.([]any)
				return MapEntry{Key: kv[0], Value: kv[1]}, nil
			})
			if err != nil {
				return nil, err
			}
			return MapValue(entries), nil
		},
		write: func(v any, w *Writer) error {
			entries := v.(MapValue)
			return WriteVec(w, []MapEntry(entries), func(w *Writer, e MapEntry, i, n int) error {
				return pair.Write([]any{e.Key, e.Value}, w)
			})
		},
		validate: func(v any) error {
			entries, ok := v.(MapValue)
			if !ok {
				return &ValidationError{Schema: vecName, Reason: "value must be a MapValue"}
			}
			for _, e := range entries {
				if err := pair.Validate([]any{e.Key, e.Value}); err != nil {
					return err
				}
			}
			return nil
		},
		sizeHint: func(v any) (int, bool) {
			entries, ok := v.(MapValue)
			if !ok {
				return 0, false
			}
			total := uleb128Width(uint32(len(entries)))
			for _, e := range entries {
				n, ok := pair.SizeHint([]any{e.Key, e.Value})
				if !ok {
					return 0, false
				}
				total += n
			}
			return total, true
		},
	}
}
