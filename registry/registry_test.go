package registry

import (
	"bytes"
	"testing"

	bcs "github.com/0xbe1/go-bcs"
)

func TestResolvePrimitive(t *testing.T) {
	r := NewWithDefaults()
	c, err := r.Resolve("u64")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	env, err := bcs.Serialize(bcs.FromCodec(c), uint64(1000))
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if env.ToHex() != "0xe803000000000000" {
		t.Fatalf("ToHex() = %s, want 0xe803000000000000", env.ToHex())
	}
}

func TestResolveVectorOfU8(t *testing.T) {
	r := NewWithDefaults()
	c, err := r.Resolve("vector<u8>")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	env, err := bcs.Serialize(bcs.FromCodec(c), []any{uint8(1), uint8(2), uint8(3)})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if env.ToHex() != "0x03010203" {
		t.Fatalf("ToHex() = %s, want 0x03010203", env.ToHex())
	}
}

func TestResolveNestedGeneric(t *testing.T) {
	r := NewWithDefaults()
	c, err := r.Resolve("option<vector<u8>>")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	var payload any = []any{uint8(0xaa), uint8(0xbb)}
	env, err := bcs.Serialize(bcs.FromCodec(c), &payload)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if env.ToHex() != "0x0102aabb" {
		t.Fatalf("ToHex() = %s, want 0x0102aabb", env.ToHex())
	}
}

func TestResolveTupleRejectsEmpty(t *testing.T) {
	r := NewWithDefaults()
	if _, err := r.Resolve("tuple<>"); err == nil {
		t.Fatalf("expected error for empty tuple parameter list")
	}
}

func TestRegisterLeafAndUseInGeneric(t *testing.T) {
	r := NewWithDefaults()
	coin := bcs.Struct("Coin", []bcs.Field{
		{Name: "value", Codec: bcs.U64().Codec()},
	})
	r.Register("Coin", coin)

	c, err := r.Resolve("vector<Coin>")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	env, err := bcs.Serialize(bcs.FromCodec(c), []any{
		map[string]any{"value": uint64(1)},
		map[string]any{"value": uint64(2)},
	})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	got, err := env.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	items, ok := got.([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("got %#v, want two struct values", got)
	}
}

func TestAliasResolvesTransitively(t *testing.T) {
	r := NewWithDefaults()
	if err := r.Alias("Balance", "u64"); err != nil {
		t.Fatalf("Alias: %v", err)
	}
	if err := r.Alias("Amount", "Balance"); err != nil {
		t.Fatalf("Alias: %v", err)
	}
	c, err := r.Resolve("Amount")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	env, err := bcs.Serialize(bcs.FromCodec(c), uint64(7))
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !bytes.Equal(env.ToBytes(), []byte{7, 0, 0, 0, 0, 0, 0, 0}) {
		t.Fatalf("ToBytes() = %x, want 0700000000000000", env.ToBytes())
	}
}

func TestAliasRejectsCycle(t *testing.T) {
	r := NewWithDefaults()
	if err := r.Alias("A", "u64"); err != nil {
		t.Fatalf("Alias A->u64: %v", err)
	}
	if err := r.Alias("B", "A"); err != nil {
		t.Fatalf("Alias B->A: %v", err)
	}
	// Re-point A at B, which would close the cycle A -> B -> A.
	if err := r.Alias("A", "B"); err == nil {
		t.Fatalf("expected cycle error, got none")
	}
}

func TestResolveUnknownName(t *testing.T) {
	r := NewWithDefaults()
	if _, err := r.Resolve("NoSuchType"); err == nil {
		t.Fatalf("expected error for unknown type name")
	}
}

func TestResolveMalformedExpression(t *testing.T) {
	r := NewWithDefaults()
	cases := []string{"vector<u8", "vector<u8>>", "vector<>"}
	for _, expr := range cases {
		if _, err := r.Resolve(expr); err == nil {
			t.Fatalf("Resolve(%q): expected error, got none", expr)
		}
	}
}
