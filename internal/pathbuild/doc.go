// Package pathbuild provides efficient incremental construction of
// normalized JSONPath location strings during traversal.
//
// The primary type is [Builder], which uses push/pop semantics to build a
// node's path without allocating intermediate strings on every recursive
// call. Only [Builder.String] materializes the full normalized form
// (RFC 9535 §2.7): a leading "$", then "[N]" for each non-negative integer
// index part and "['name']" for each name part, with "'" escaped as "\'".
//
//	b := pathbuild.Get()
//	defer pathbuild.Put(b)
//
//	b.PushName("store")
//	b.PushName("book")
//	b.PushIndex(0)
//	b.String() // "$['store']['book'][0]"
//	b.Pop()
//
// [SanitizeOutputPath] cleans a CLI output file path into an absolute
// path and rejects symlink targets. "../" segments are resolved, not
// rejected.
package pathbuild
