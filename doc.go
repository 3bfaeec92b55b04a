// Package jsonpathkit provides a JSONPath (RFC 9535) query engine, a JSON
// Pointer (RFC 6901) and Relative JSON Pointer implementation, and a JSON
// Patch (RFC 6902) engine, sharing one ordered JSON value model.
//
// jsonpathkit offers three main packages:
//
//   - jsonpath: compile and evaluate RFC 9535 JSONPath expressions
//   - pointer: resolve RFC 6901 JSON Pointers and Relative JSON Pointers
//   - patch: build and apply RFC 6902 JSON Patch documents
//
// # Installation
//
//	go get github.com/jsonpathkit/jsonpathkit
//
// # Quick Start
//
// Compile and run a JSONPath query:
//
//	import "github.com/jsonpathkit/jsonpathkit/jsonpath"
//
//	path, err := jsonpath.Compile("$.store.book[?@.price < 10].title")
//	if err != nil {
//		log.Fatal(err)
//	}
//	nodes, err := path.FindAll(doc)
//	for _, n := range nodes {
//		fmt.Println(n.Location(), n.Value)
//	}
//
// Resolve a JSON Pointer:
//
//	import "github.com/jsonpathkit/jsonpathkit/pointer"
//
//	p, err := pointer.Parse("/store/book/0/title")
//	if err != nil {
//		log.Fatal(err)
//	}
//	v, err := pointer.Resolve(p, doc)
//
// Build and apply a JSON Patch:
//
//	import "github.com/jsonpathkit/jsonpathkit/patch"
//
//	ops := patch.NewBuilder().
//		Replace("/store/book/0/price", 9).
//		Remove("/store/book/1").
//		Build()
//	result, err := patch.Apply(ops, doc)
//
// # jsonpath Package
//
// The jsonpath package implements RFC 9535 in full: the dot/bracket
// grammar, wildcard and slice selectors, the recursive descent segment,
// filter expressions with a typed function-extension registry, and
// normalized path output. See the jsonpath package documentation for
// the query language and the fluent Query API.
//
// # pointer Package
//
// The pointer package implements RFC 6901 JSON Pointer parsing and
// resolution, and Relative JSON Pointer (an up-count origin, an optional
// index offset, then a pointer tail or "#" for the target's key or index).
// It does not modify documents; that is done by the patch package.
//
// # patch Package
//
// The patch package implements RFC 6902 JSON Patch: add, remove, replace,
// move, copy, and test operations, plus a chainable builder.
//
// # Data Model
//
// All three packages operate on a shared ordered JSON value model (package
// jsonvalue) rather than encoding/json's map[string]any, because RFC 9535
// and RFC 6902 both require objects to preserve member insertion order.
//
// # Security Considerations
//
//   - Resource limits: a configurable max recursion depth bounds descendant
//     segment evaluation and a bounded-capacity regex cache prevents
//     unbounded memory growth from compiled patterns.
//   - No panics on malformed input: library functions return errors
//     instead (MustCompile, which panics on a compile error, is the
//     exception). Compile, pointer and patch failures use the pkerrors
//     taxonomy.
//
// # Command-Line Interface
//
// In addition to the library packages, jsonpathkit provides a command-line
// interface:
//
//	# Query a document
//	jsonpathkit path -q '$.store.book[*].title' -f doc.json
//
//	# Resolve a pointer
//	jsonpathkit pointer -q '/store/book/0' -f doc.json
//
//	# Apply a patch
//	jsonpathkit patch -r patch.json -f doc.json
//
// Install the CLI:
//
//	go install github.com/jsonpathkit/jsonpathkit/cmd/jsonpathkit@latest
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in
// the repository for full details.
package jsonpathkit
