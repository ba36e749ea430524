// Package registry is a thin, optional compatibility layer above the
// combinator core: a mutable, per-instance mapping from string type names to
// schemas, with a small parser for "Name<A, B, ...>" expressions and alias
// resolution. New code should prefer the combinator API in the root package
// directly; this exists for callers porting an older name-indirected API.
package registry

import (
	"fmt"
	"strings"
	"sync"

	bcs "github.com/0xbe1/go-bcs"
)

// Generic builds a Codec for a parameterized type name (e.g. "vector",
// "option") from its already-resolved type parameter Codecs.
type Generic func(params []bcs.Codec) (bcs.Codec, error)

// Registry holds named leaf codecs, named generic constructors, and string
// aliases. It carries no package-level state; every Registry is independent.
type Registry struct {
	mu       sync.RWMutex
	leaves   map[string]bcs.Codec
	generics map[string]Generic
	aliases  map[string]string
}

// New returns an empty registry with no names registered.
func New() *Registry {
	return &Registry{
		leaves:   make(map[string]bcs.Codec),
		generics: make(map[string]Generic),
		aliases:  make(map[string]string),
	}
}

// NewWithDefaults returns a registry pre-populated with the BCS primitives
// and the three built-in generic combinators ("vector", "option", "tuple").
func NewWithDefaults() *Registry {
	r := New()
	r.Register("bool", bcs.Bool().Codec())
	r.Register("u8", bcs.U8().Codec())
	r.Register("u16", bcs.U16().Codec())
	r.Register("u32", bcs.U32().Codec())
	r.Register("u64", bcs.U64().Codec())
	r.Register("u128", bcs.U128().Codec())
	r.Register("u256", bcs.U256().Codec())
	r.Register("string", bcs.StringValue().Codec())
	r.Register("bytes", bcs.VarBytes().Codec())

	r.RegisterGeneric("vector", func(params []bcs.Codec) (bcs.Codec, error) {
		if len(params) != 1 {
			return bcs.Codec{}, fmt.Errorf("registry: vector takes exactly one type parameter, got %d", len(params))
		}
		return bcs.Vector(bcs.FromCodec(params[0])).Codec(), nil
	})
	r.RegisterGeneric("option", func(params []bcs.Codec) (bcs.Codec, error) {
		if len(params) != 1 {
			return bcs.Codec{}, fmt.Errorf("registry: option takes exactly one type parameter, got %d", len(params))
		}
		return bcs.Option(bcs.FromCodec(params[0])).Codec(), nil
	})
	r.RegisterGeneric("tuple", func(params []bcs.Codec) (bcs.Codec, error) {
		if len(params) == 0 {
			return bcs.Codec{}, fmt.Errorf("registry: tuple takes at least one type parameter")
		}
		return bcs.Tuple(params), nil
	})
	return r
}

// Register binds name to a concrete, zero-parameter codec, e.g. a
// previously built Struct or Enumeration. Overwrites any prior binding of
// the same name, including an alias.
func (r *Registry) Register(name string, c bcs.Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leaves[name] = c
	delete(r.aliases, name)
}

// RegisterGeneric binds name to a parameterized constructor, e.g. "vector".
// Overwrites any prior binding of the same name.
func (r *Registry) RegisterGeneric(name string, g Generic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generics[name] = g
	delete(r.aliases, name)
}

// Alias binds name to resolve as if it were target, e.g. Alias("SUI",
// "0x2::sui::SUI"). target is itself resolved through Resolve, so an alias
// may point at another alias, a generic expression, or a leaf name.
// Aliasing name to itself, or to a chain that eventually returns to name, is
// a cycle and is rejected without mutating the registry.
func (r *Registry) Alias(name, target string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.resolveLocked(target, map[string]bool{name: true}); err != nil {
		return fmt.Errorf("registry: cannot alias %q to %q: %w", name, target, err)
	}
	r.aliases[name] = target
	delete(r.leaves, name)
	delete(r.generics, name)
	return nil
}

// Resolve parses expr as "Name" or "Name<Param1, Param2, ...>", where each
// Param is itself a valid expr, and returns the resulting Codec. Unknown
// names and malformed expressions are reported as plain errors; cycles
// found while following aliases are reported too.
func (r *Registry) Resolve(expr string) (bcs.Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveLocked(expr, map[string]bool{})
}

func (r *Registry) resolveLocked(expr string, visiting map[string]bool) (bcs.Codec, error) {
	name, paramExprs, err := splitNameAndParams(expr)
	if err != nil {
		return bcs.Codec{}, err
	}

	if target, ok := r.aliases[name]; ok {
		if visiting[name] {
			return bcs.Codec{}, fmt.Errorf("registry: alias cycle detected at %q", name)
		}
		visiting[name] = true
		defer delete(visiting, name)
		if len(paramExprs) > 0 {
			return bcs.Codec{}, fmt.Errorf("registry: alias %q does not take type parameters", name)
		}
		return r.resolveLocked(target, visiting)
	}

	if len(paramExprs) == 0 {
		c, ok := r.leaves[name]
		if !ok {
			return bcs.Codec{}, fmt.Errorf("registry: unknown type name %q", name)
		}
		return c, nil
	}

	g, ok := r.generics[name]
	if !ok {
		return bcs.Codec{}, fmt.Errorf("registry: unknown generic type name %q", name)
	}
	params := make([]bcs.Codec, len(paramExprs))
	for i, p := range paramExprs {
		c, err := r.resolveLocked(p, visiting)
		if err != nil {
			return bcs.Codec{}, err
		}
		params[i] = c
	}
	return g(params)
}

// splitNameAndParams parses "Name" or "Name<P1, P2, ...>" into the bare name
// and the comma-separated parameter expressions, respecting nested angle
// brackets so that "Option<Tuple<u8, u8>>" splits into one parameter, not
// two.
func splitNameAndParams(expr string) (name string, params []string, err error) {
	expr = strings.TrimSpace(expr)
	angle := strings.Index(expr, "<")
	if angle == -1 {
		return expr, nil, nil
	}
	if !strings.HasSuffix(expr, ">") {
		return "", nil, fmt.Errorf("registry: malformed type expression %q: missing closing >", expr)
	}
	name = strings.TrimSpace(expr[:angle])
	inner := expr[angle+1 : len(expr)-1]

	depth, start := 0, 0
	for i, c := range inner {
		switch c {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return "", nil, fmt.Errorf("registry: malformed type expression %q: unbalanced >", expr)
			}
		case ',':
			if depth == 0 {
				params = append(params, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return "", nil, fmt.Errorf("registry: malformed type expression %q: unbalanced <", expr)
	}
	last := strings.TrimSpace(inner[start:])
	if last == "" {
		return "", nil, fmt.Errorf("registry: malformed type expression %q: empty type parameter", expr)
	}
	params = append(params, last)
	return name, params, nil
}
