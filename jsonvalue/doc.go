// Package jsonvalue defines the JSON value model shared by jsonpath,
// pointer, and patch.
//
// A JSON value is represented as a plain Go any holding one of:
//
//	nil             null
//	bool            boolean
//	int64 | float64 number (integer or floating)
//	string          string
//	[]any           ordered sequence
//	*Object         ordered mapping from string to JSON
//
// encoding/json's map[string]any cannot represent RFC 9535's insertion-order
// requirement for mappings (normalized path construction and wildcard
// ordering both depend on it), so [Object] is used in its place everywhere
// a JSON object appears, including as elements of []any and as values
// within other Objects.
//
// [Decode] parses a JSON document into this model, preserving key order.
// [Undefined] is the engine's sentinel for "no such value", distinct from a
// JSON null.
package jsonvalue
