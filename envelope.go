package bcs

import (
	"encoding/base64"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/0xbe1/go-bcs/internal/hex"
)

// Envelope is an immutable pair of a schema and the bytes it produced.
// Because it remembers the schema that produced it, Parse always round-trips
// within the same envelope rather than depending on an externally supplied
// schema.
type Envelope[T, I any] struct {
	schema Schema[T, I]
	bytes  []byte
}

// Serialize validates and encodes value with schema, returning the
// resulting Envelope. opts configures the Writer's growth policy; the zero
// value falls back to DefaultWriterOptions.
func Serialize[T, I any](schema Schema[T, I], value I, opts ...WriterOptions) (Envelope[T, I], error) {
	var o WriterOptions
	if len(opts) > 0 {
		o = opts[0]
	} else if hint, ok := schema.SizeHint(value); ok {
		o = WriterOptions{InitialSize: hint, MaxSize: hint, GrowChunk: hint}
	} else {
		o = DefaultWriterOptions
	}
	w := NewWriter(o)
	if err := schema.Write(value, w); err != nil {
		return Envelope[T, I]{}, err
	}
	out := make([]byte, w.Pos())
	copy(out, w.Bytes())
	return Envelope[T, I]{schema: schema, bytes: out}, nil
}

// ToBytes returns the raw serialized bytes.
func (e Envelope[T, I]) ToBytes() []byte { return e.bytes }

// ToHex returns the bytes as a "0x"-prefixed hex string.
func (e Envelope[T, I]) ToHex() string { return hex.Encode(e.bytes) }

// ToBase58 returns the bytes base58-encoded.
func (e Envelope[T, I]) ToBase58() string { return base58.Encode(e.bytes) }

// ToBase64 returns the bytes standard-base64-encoded.
func (e Envelope[T, I]) ToBase64() string { return base64.StdEncoding.EncodeToString(e.bytes) }

// Parse decodes the envelope's own bytes back through its own schema.
func (e Envelope[T, I]) Parse() (T, error) {
	r := NewReader(e.bytes)
	v, err := e.schema.Read(r)
	if err != nil {
		var zero T
		return zero, err
	}
	if r.Remaining() > 0 {
		var zero T
		return zero, fmt.Errorf("bcs: %d bytes remaining after parsing %s", r.Remaining(), e.schema.Name())
	}
	return v, nil
}

// Parse decodes data with schema, failing if any bytes remain unconsumed.
func Parse[T, I any](schema Schema[T, I], data []byte) (T, error) {
	r := NewReader(data)
	v, err := schema.Read(r)
	if err != nil {
		var zero T
		return zero, err
	}
	if r.Remaining() > 0 {
		var zero T
		return zero, fmt.Errorf("bcs: %d bytes remaining after parsing %s", r.Remaining(), schema.Name())
	}
	return v, nil
}

// ParseFromHex decodes a "0x"-prefixed (or bare) hex string and parses it
// with schema.
func ParseFromHex[T, I any](schema Schema[T, I], s string) (T, error) {
	data, err := hex.Decode(s)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("bcs: invalid hex input: %w", err)
	}
	return Parse(schema, data)
}

// ParseFromBase58 decodes a base58 string and parses it with schema.
func ParseFromBase58[T, I any](schema Schema[T, I], s string) (T, error) {
	data, err := base58.Decode(s)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("bcs: invalid base58 input: %w", err)
	}
	return Parse(schema, data)
}

// ParseFromBase64 decodes a standard-base64 string and parses it with
// schema.
func ParseFromBase64[T, I any](schema Schema[T, I], s string) (T, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("bcs: invalid base64 input: %w", err)
	}
	return Parse(schema, data)
}
