// Package schema models extracted Moodle function-schema documents.
//
// A schema document is the JSON artifact produced by the PHP-side metadata
// extraction step for one Moodle version. It carries site metadata plus an
// ordered list of remote function descriptors, each with a parameter tree
// and an optional return tree described by [Value].
//
// Value is a tagged union discriminated by the "kind" field:
//
//	{"kind": "scalar", "type": "integer", "required": true, "default": 0}
//	{"kind": "object", "properties": {"id": {...}, "name": {...}}}
//	{"kind": "array", "items": {...}}
//	{"kind": "unknown"}
//
// Object property order is preserved from the source document so generated
// output is reproducible. Documents are read-only after decoding; nothing
// in this library mutates them.
package schema
