package bcs

// Codec is the untyped core of a schema: read a value from a Reader, write
// a value to a Writer, optionally validate before writing, optionally
// report an exact serialized size. The compound combinators that are
// inherently heterogeneous — Struct fields, Enumeration variants, Tuple
// elements — are built directly on Codec because Go has no way to express
// "a list of schemas, each with its own unrelated type" without either code
// generation or a dynamic value. Schema[T, I] (below) is the strongly typed
// view used everywhere else.
type Codec struct {
	Name string

	read  func(*Reader) (any, error)
	write func(any, *Writer) error

	// sizeHint reports the exact serialized size of v, if the schema can
	// compute one without actually serializing (e.g. fixed-width
	// primitives, or a FixedArray of such). Returns false when no such
	// hint is available.
	sizeHint func(v any) (int, bool)

	// validate runs before write; a non-nil error aborts before any bytes
	// are produced.
	validate func(v any) error
}

func noValidate(any) error { return nil }

func noSizeHint(any) (int, bool) { return 0, false }

// Read decodes one value using this codec.
func (c Codec) Read(r *Reader) (any, error) { return c.read(r) }

// Write validates then encodes v using this codec.
func (c Codec) Write(v any, w *Writer) error {
	if err := c.validate(v); err != nil {
		return err
	}
	return c.write(v, w)
}

// Validate runs this codec's validator over v without writing anything.
func (c Codec) Validate(v any) error { return c.validate(v) }

// SizeHint reports the exact serialized size of v if known.
func (c Codec) SizeHint(v any) (int, bool) { return c.sizeHint(v) }

// Schema is the typed, user-facing view of a codec: read produces a T,
// write accepts an I. For most combinators T and I coincide (a Bool schema
// both produces and consumes a Go bool); Transform and Option are the two
// combinators that genuinely need T and I to differ.
type Schema[T, I any] struct {
	codec Codec

	toT   func(any) (T, error)
	fromI func(I) (any, error)
}

// Name returns the schema's display name.
func (s Schema[T, I]) Name() string { return s.codec.Name }

// Read parses one T from r.
func (s Schema[T, I]) Read(r *Reader) (T, error) {
	v, err := s.codec.read(r)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.toT(v)
}

// Write validates and encodes value into w.
func (s Schema[T, I]) Write(value I, w *Writer) error {
	v, err := s.fromI(value)
	if err != nil {
		return err
	}
	return s.codec.Write(v, w)
}

// Validate runs the schema's validator over value without writing anything.
func (s Schema[T, I]) Validate(value I) error {
	v, err := s.fromI(value)
	if err != nil {
		return err
	}
	return s.codec.validate(v)
}

// SizeHint reports the exact serialized size of value if the schema can
// compute one without serializing.
func (s Schema[T, I]) SizeHint(value I) (int, bool) {
	v, err := s.fromI(value)
	if err != nil {
		return 0, false
	}
	return s.codec.sizeHint(v)
}

// Codec exposes the untyped core backing this schema, for embedding inside
// Struct/Enumeration/Tuple/Vector-of-dynamic-element combinators.
func (s Schema[T, I]) Codec() Codec { return s.codec }

// newIdentitySchema builds a Schema[T, T] directly from a Codec, used by
// every primitive and by combinators whose input and output types coincide.
func newIdentitySchema[T any](c Codec) Schema[T, T] {
	return Schema[T, T]{
		codec: c,
		toT: func(v any) (T, error) {
			t, ok := v.(T)
			if !ok {
				var zero T
				return zero, &SchemaError{Reason: "codec produced a value of an unexpected type for " + c.Name}
			}
			return t, nil
		},
		fromI: func(v T) (any, error) { return v, nil },
	}
}

// FromCodec lifts an untyped Codec into a Schema[any, any], for composing
// dynamic combinators (Struct, Enumeration, Tuple, Map) with the generic
// ones (Vector, FixedArray, Option).
func FromCodec(c Codec) Schema[any, any] {
	return Schema[any, any]{
		codec: c,
		toT:   func(v any) (any, error) { return v, nil },
		fromI: func(v any) (any, error) { return v, nil },
	}
}
