// Package bcs implements Binary Canonical Serialization (BCS), the
// deterministic, schema-driven binary format used by the Diem/Move/Sui
// ecosystems.
//
// A caller declares a schema describing the shape of a value — primitives,
// fixed arrays, length-prefixed vectors, optionals, tuples, structs, tagged
// unions, and string-like types — and then uses that schema to serialize a
// value into a compact little-endian byte stream or parse such a stream
// back into the corresponding value. The wire format itself is fixed by the
// upstream BCS spec; what this package provides is a composable schema
// model on top of it.
//
// # Quick Start
//
// Build a schema out of the primitive and compound combinators:
//
//	coin := bcs.Struct("Coin", []bcs.Field{
//		{Name: "value", Codec: bcs.U64().Codec()},
//		{Name: "owner", Codec: bcs.StringValue().Codec()},
//		{Name: "is_locked", Codec: bcs.Bool().Codec()},
//	})
//	schema := bcs.FromCodec(coin)
//
// Serialize a value and inspect the wire bytes:
//
//	env, err := bcs.Serialize(schema, map[string]any{
//		"value":     uint64(412412400000),
//		"owner":     "Big Wallet Guy",
//		"is_locked": false,
//	})
//	fmt.Println(env.ToHex())
//
// Parse bytes back through the same schema:
//
//	value, err := env.Parse()
//
// # Package Structure
//
//   - bcs (this package): the schema combinator core — Reader/Writer
//     cursors, ULEB128, primitives, compound combinators, Transform, Lazy,
//     and the serialized Envelope.
//   - bcs/registry: an optional string-named façade over the combinator
//     core, for callers migrating from a name-registry-based API.
//   - bcs/crypto: Ed25519 and secp256k1 signing and SHA3-256 hashing
//     helpers; they are standalone and not called by the other packages.
package bcs
