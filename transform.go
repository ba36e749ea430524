package bcs

import "sync"

// Transform layers user-side conversions on top of an existing schema: the
// resulting schema's Write accepts an I2 and converts it to inner's I via
// toInner before encoding; its Read produces inner's T and converts it to a
// T2 via fromInner. An optional validate runs against the caller-facing I2
// before toInner is even called. Identity and associativity of Transform
// follow directly from pure function composition.
func Transform[T, I, T2, I2 any](inner Schema[T, I], toInner func(I2) (I, error), fromInner func(T) (T2, error), validate func(I2) error, name ...string) Schema[T2, I2] {
	schemaName := inner.Name()
	if len(name) > 0 {
		schemaName = name[0]
	}
	innerCodec := inner.codec
	return Schema[T2, I2]{
		codec: Codec{
			Name: schemaName,
			read: func(r *Reader) (any, error) {
				v, err := innerCodec.read(r)
				if err != nil {
					return nil, err
				}
				t, err := inner.toT(v)
				if err != nil {
					return nil, err
				}
				out, err := fromInner(t)
				if err != nil {
					return nil, err
				}
				return out, nil
			},
			write: func(v any, w *Writer) error {
				i2 := v.(I2)
				i, err := toInner(i2)
				if err != nil {
					return err
				}
				return inner.Write(i, w)
			},
			validate: func(v any) error {
				i2 := v.(I2)
				if validate != nil {
					if err := validate(i2); err != nil {
						return err
					}
				}
				i, err := toInner(i2)
				if err != nil {
					return err
				}
				return inner.Validate(i)
			},
			sizeHint: func(v any) (int, bool) {
				i2 := v.(I2)
				i, err := toInner(i2)
				if err != nil {
					return 0, false
				}
				return inner.SizeHint(i)
			},
		},
		toT:   func(v any) (T2, error) { return v.(T2), nil },
		fromI: func(v I2) (any, error) { return v, nil },
	}
}

// Lazy defers construction of a schema until its first use, memoizing the
// result. It is the only supported mechanism for self-referential schemas
// (e.g. a tree node whose field is a vector of itself): the factory closure
// can refer to a schema variable that is only fully assigned after Lazy
// returns, because the factory doesn't run until later.
func Lazy[T, I any](factory func() Schema[T, I]) Schema[T, I] {
	var (
		once  sync.Once
		inner Schema[T, I]
	)
	resolve := func() Schema[T, I] {
		once.Do(func() { inner = factory() })
		return inner
	}
	return Schema[T, I]{
		codec: Codec{
			Name: "lazy",
			read: func(r *Reader) (any, error) {
				s := resolve()
				return s.codec.read(r)
			},
			write: func(v any, w *Writer) error {
				s := resolve()
				return s.codec.Write(v, w)
			},
			validate: func(v any) error {
				s := resolve()
				return s.codec.validate(v)
			},
			sizeHint: func(v any) (int, bool) {
				s := resolve()
				return s.codec.sizeHint(v)
			},
		},
		toT:   func(v any) (T, error) { s := resolve(); return s.toT(v) },
		fromI: func(v I) (any, error) { s := resolve(); return s.fromI(v) },
	}
}

// LazyCodec is the untyped equivalent of Lazy, for recursive schemas built
// at the Struct/Enumeration/Tuple/Map level.
func LazyCodec(factory func() Codec) Codec {
	var (
		once  sync.Once
		inner Codec
	)
	resolve := func() Codec {
		once.Do(func() { inner = factory() })
		return inner
	}
	return Codec{
		Name:     "lazy",
		read:     func(r *Reader) (any, error) { return resolve().read(r) },
		write:    func(v any, w *Writer) error { return resolve().Write(v, w) },
		validate: func(v any) error { return resolve().validate(v) },
		sizeHint: func(v any) (int, bool) { return resolve().sizeHint(v) },
	}
}
