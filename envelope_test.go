package bcs

import (
	"testing"
)

func TestEnvelopeHexRoundTrip(t *testing.T) {
	env, err := Serialize(U32(), uint32(0x12345678))
	if err != nil {
		t.Fatal(err)
	}
	hexStr := env.ToHex()
	if hexStr != "0x78563412" {
		t.Errorf("ToHex() = %s, want 0x78563412", hexStr)
	}
	got, err := ParseFromHex(U32(), hexStr)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0x12345678 {
		t.Errorf("ParseFromHex round trip = %x, want 12345678", got)
	}
}

func TestEnvelopeBase58RoundTrip(t *testing.T) {
	env, err := Serialize(StringValue(), "hello world")
	if err != nil {
		t.Fatal(err)
	}
	b58 := env.ToBase58()
	got, err := ParseFromBase58(StringValue(), b58)
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello world" {
		t.Errorf("base58 round trip = %q, want %q", got, "hello world")
	}
}

func TestEnvelopeBase64RoundTrip(t *testing.T) {
	env, err := Serialize(Vector(U8()), []uint8{1, 2, 3, 255})
	if err != nil {
		t.Fatal(err)
	}
	b64 := env.ToBase64()
	got, err := ParseFromBase64(Vector(U8()), b64)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 || got[3] != 255 {
		t.Errorf("base64 round trip mismatch: %v", got)
	}
}

func TestEnvelopeParseRejectsTrailingBytes(t *testing.T) {
	w := NewWriter(DefaultWriterOptions)
	if err := U8().Write(uint8(1), w); err != nil {
		t.Fatal(err)
	}
	if err := U8().Write(uint8(2), w); err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(U8(), w.Bytes()); err == nil {
		t.Error("expected error for trailing unconsumed bytes")
	}
}

func TestEnvelopeSizeHintPicksExactBuffer(t *testing.T) {
	env, err := Serialize(FixedArray(4, U8()), []uint8{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if len(env.ToBytes()) != 4 {
		t.Errorf("fixed array of 4 u8 produced %d bytes, want 4", len(env.ToBytes()))
	}
}

func TestParseFromHexInvalidInput(t *testing.T) {
	if _, err := ParseFromHex(U8(), "not hex"); err == nil {
		t.Error("expected error for invalid hex input")
	}
}
