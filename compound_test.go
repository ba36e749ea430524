package bcs

import (
	"bytes"
	"fmt"
	"math/big"
	"testing"
)

func TestVectorEmptyAndLength(t *testing.T) {
	s := Vector(U8())

	env, err := Serialize(s, []uint8{})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(env.ToBytes(), []byte{0x00}) {
		t.Errorf("empty vector = %x, want 00", env.ToBytes())
	}

	// vector(u8) of 1000 0xff bytes -> e807 + 1000*ff.
	values := make([]uint8, 1000)
	for i := range values {
		values[i] = 0xff
	}
	env, err = Serialize(s, values)
	if err != nil {
		t.Fatal(err)
	}
	want := append([]byte{0xe8, 0x07}, bytes.Repeat([]byte{0xff}, 1000)...)
	if !bytes.Equal(env.ToBytes(), want) {
		t.Errorf("vector of 1000 bytes length prefix/content mismatch")
	}

	got, err := env.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1000 {
		t.Errorf("parsed length = %d, want 1000", len(got))
	}
}

func TestFixedArrayOverLongInput(t *testing.T) {
	s := FixedArray(3, U8())
	if err := s.Validate([]uint8{1, 2, 3, 4}); err == nil {
		t.Error("expected ValidationError for over-long fixed_array input")
	}
	if err := s.Validate([]uint8{1, 2}); err == nil {
		t.Error("expected ValidationError for under-long fixed_array input")
	}
}

func TestOptionU8(t *testing.T) {
	s := Option(U8())

	one := uint8(5)
	env, err := Serialize(s, &one)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(env.ToBytes(), []byte{0x01, 0x05}) {
		t.Errorf("Some(5) = %x, want 0105", env.ToBytes())
	}

	env, err = Serialize(s, (*uint8)(nil))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(env.ToBytes(), []byte{0x00}) {
		t.Errorf("None = %x, want 00", env.ToBytes())
	}
}

func TestFixedArrayOfOptions(t *testing.T) {
	// fixed_array(3, option(u8)) of [1, null, 3] ->
	// 0101 00 0103.
	s := FixedArray(3, Option(U8()))
	one, three := uint8(1), uint8(3)
	env, err := Serialize(s, []*uint8{&one, nil, &three})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x01, 0x01, 0x00, 0x01, 0x03}
	if !bytes.Equal(env.ToBytes(), want) {
		t.Errorf("got %x, want %x", env.ToBytes(), want)
	}
}

func TestNestedOptionVectorOption(t *testing.T) {
	s := Option(Vector(Option(U8())))
	one := uint8(1)
	value := []*uint8{&one, nil}
	env, err := Serialize(s, &value)
	if err != nil {
		t.Fatal(err)
	}
	got, err := env.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(*got) != 2 || *(*got)[0] != 1 || (*got)[1] != nil {
		t.Errorf("round trip mismatch: %v", got)
	}
}

func TestTupleOfOptions(t *testing.T) {
	// tuple([option(u8), option(u8)]) of [null, 1] ->
	// 00 0101.
	elem := Option(U8())
	tup := Tuple([]Codec{elem.Codec(), elem.Codec()})
	one := uint8(1)
	var i1 *uint8
	i2 := &one
	data := NewWriter(DefaultWriterOptions)
	if err := tup.Write([]any{i1, i2}, data); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x00, 0x01, 0x01}
	if !bytes.Equal(data.Bytes(), want) {
		t.Errorf("got %x, want %x", data.Bytes(), want)
	}
}

func TestStructCoin(t *testing.T) {
	// Struct with a string and bool field alongside a u64.
	coin := Struct("Coin", []Field{
		{Name: "value", Codec: U64().Codec()},
		{Name: "owner", Codec: StringValue().Codec()},
		{Name: "is_locked", Codec: Bool().Codec()},
	})
	schema := FromCodec(coin)
	env, err := Serialize(schema, map[string]any{
		"value":     uint64(412412400000),
		"owner":     "Big Wallet Guy",
		"is_locked": false,
	})
	if err != nil {
		t.Fatal(err)
	}
	wantHex := "80d1b105600000000e4269672057616c6c65742047757900"
	if env.ToHex() != "0x"+wantHex {
		t.Errorf("Coin bytes = %s, want 0x%s", env.ToHex(), wantHex)
	}

	got, err := env.Parse()
	if err != nil {
		t.Fatal(err)
	}
	sv := got.(StructValue)
	value, _ := sv.Get("value")
	if value.(uint64) != 412412400000 {
		t.Errorf("value = %v, want 412412400000", value)
	}
	owner, _ := sv.Get("owner")
	if owner.(string) != "Big Wallet Guy" {
		t.Errorf("owner = %v, want Big Wallet Guy", owner)
	}

	if err := coin.Validate(map[string]any{"value": uint64(1)}); err == nil {
		t.Error("expected ValidationError for missing fields")
	}
}

func TestEnumerationScenario(t *testing.T) {
	// An enumeration with Variant2 = "hello" -> 02 05 68656c6c6f.
	e := Enumeration("E", []Variant{
		{Name: "Variant0", Codec: U16().Codec()},
		{Name: "Variant1", Codec: U8().Codec()},
		{Name: "Variant2", Codec: StringValue().Codec()},
	})
	schema := FromCodec(e)
	env, err := Serialize(schema, EnumValue{Kind: "Variant2", Value: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x02, 0x05, 'h', 'e', 'l', 'l', 'o'}
	if !bytes.Equal(env.ToBytes(), want) {
		t.Errorf("got %x, want %x", env.ToBytes(), want)
	}

	if _, err := Parse(schema, []byte{0x05}); err == nil {
		t.Error("expected MalformedError for unknown discriminant")
	}
	if err := e.Validate(map[string]any{"Variant0": uint16(1), "Variant1": uint8(2)}); err == nil {
		t.Error("expected ValidationError for multiple variant keys")
	}
}

func TestEnumerationUnitVariant(t *testing.T) {
	e := Enumeration("Maybe", []Variant{
		UnitVariant("Nothing"),
		{Name: "Just", Codec: U8().Codec()},
	})
	schema := FromCodec(e)
	env, err := Serialize(schema, EnumValue{Kind: "Nothing", Value: struct{}{}})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(env.ToBytes(), []byte{0x00}) {
		t.Errorf("unit variant wrote %x, want 00", env.ToBytes())
	}
}

func TestMapOrderedRoundTrip(t *testing.T) {
	m := Map(StringValue().Codec(), U64().Codec())
	schema := FromCodec(m)
	entries := MapValue{
		{Key: "b", Value: uint64(2)},
		{Key: "a", Value: uint64(1)},
	}
	env, err := Serialize(schema, entries)
	if err != nil {
		t.Fatal(err)
	}
	got, err := env.Parse()
	if err != nil {
		t.Fatal(err)
	}
	gotMap := got.(MapValue)
	if len(gotMap) != 2 || gotMap[0].Key != "b" || gotMap[1].Key != "a" {
		t.Errorf("map order not preserved: %v", gotMap)
	}
	// Re-serializing the parsed value must produce byte-identical output.
	env2, err := Serialize(schema, gotMap)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(env.ToBytes(), env2.ToBytes()) {
		t.Error("re-serializing a parsed MapValue changed the bytes")
	}
}

func TestU128TupleElement(t *testing.T) {
	tup := Tuple([]Codec{U128().Codec(), Bool().Codec()})
	v, _ := new(big.Int).SetString("18446744073709551616", 10)
	w := NewWriter(DefaultWriterOptions)
	if err := tup.Write([]any{v, true}, w); err != nil {
		t.Fatal(err)
	}
	r := NewReader(w.Bytes())
	got, err := tup.read(r)
	if err != nil {
		t.Fatal(err)
	}
	pair := got.([]any)
	if pair[0].(*big.Int).Cmp(v) != 0 || pair[1].(bool) != true {
		t.Errorf("tuple roundtrip mismatch: %v", pair)
	}
}

func TestEnumerationDiscriminantPastOneByte(t *testing.T) {
	// 200 unit variants, each uniquely named: the last one's discriminant
	// (199) no longer fits in a single ULEB128 byte, unlike every variant
	// below 128.
	variants := make([]Variant, 200)
	for i := range variants {
		variants[i] = UnitVariant(fmt.Sprintf("v%d", i))
	}
	e := Enumeration("Big", variants)
	schema := FromCodec(e)

	lastName := variants[len(variants)-1].Name // "v199"
	env, err := Serialize(schema, EnumValue{Kind: lastName, Value: struct{}{}})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xc7, 0x01} // ULEB128(199)
	if !bytes.Equal(env.ToBytes(), want) {
		t.Errorf("discriminant 199 encoded as %x, want %x", env.ToBytes(), want)
	}

	got, err := env.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if got.(EnumValue).Kind != lastName {
		t.Errorf("got %v, want variant %q", got, lastName)
	}
}
