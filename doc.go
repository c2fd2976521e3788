// Package toolcore compiles tool schemas published by a hosted tool-execution backend
// into native, validated models that agent framework adapters can wrap.
//
// # Overview
//
// A tool's input and output are described by a JSON-Schema-like tree (SchemaNode) that
// may nest objects and arrays arbitrarily and mix in oneOf/anyOf unions. This package
// turns such a tree into:
//
//   - a Type (MapPrimitive for scalars, Compiler.CompileType for everything else);
//   - a Model: ordered Fields with required/optional/default semantics at every level,
//     plus a validator resolved from the model's own JSON Schema rendering;
//   - an ordered Parameter list (BuildSignature) for synthesizing callables, with
//     parameters lacking a default ahead of defaulted ones.
//
// # Key rules
//
//   - A node's required list constrains only its own properties. A nested object that
//     requires its internal fields is not thereby required in its parent.
//   - Property names that collide with Go keywords (or words added with
//     WithReservedWords) get a trailing underscore and keep the original as Field.Alias;
//     Instance.Dump restores the original names recursively.
//   - Optional fields without an explicit default get a type-appropriate fallback
//     ("", 0, false, empty slice or map) unless WithSkipDefaults is set. NoDefault marks
//     the absence of a default and is distinct from nil.
//   - Unions accept any number of members; a single member collapses to itself.
//
// Related packages: enums resolves app/action/tag/trigger slugs to metadata, and
// triggers fans incoming events out to filtered handlers.
//
// # Example
//
//	node, _ := toolcore.ParseSchema([]byte(`{"title":"Req","type":"object",
//	    "properties":{"start":{"type":"string"}},"required":["start"]}`))
//	model, err := toolcore.CompileModel(node)
//	if err != nil { ... }
//	inst, err := model.New(map[string]any{"start": "x"})
package toolcore
