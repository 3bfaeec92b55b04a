// Package jsonpath implements RFC 9535 JSONPath query expressions, with a
// handful of well-established non-standard extensions (compound union/
// intersection paths, in/contains/=~ filter operators, #-context and ~-key
// selectors) available outside of WithStrict mode.
package jsonpath

import (
	"context"

	"github.com/jsonpathkit/jsonpathkit/jsonvalue"
)

// Path is a compiled JSONPath query expression that can be evaluated
// against any number of documents. Its regex cache (used by match(),
// search() and =~) is shared by all evaluations and is safe for concurrent
// use only when the Path was compiled WithThreadSafeRegexCache.
type Path struct {
	raw      string
	strict   bool
	Segments []Segment
	Compound []CompoundPart

	opts Options
}

// Compile parses path and returns the compiled query, or a *pkerrors.SyntaxError,
// *pkerrors.NameError, *pkerrors.IndexError, or *pkerrors.TypeError describing
// the first problem encountered.
func Compile(path string, opts ...Option) (*Path, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	regs := o.resolveRegistry()
	o.FunctionRegistry = regs

	p := newParser(path, o.Strict, regs)
	compiled, err := p.parsePath(path)
	if err != nil {
		return nil, err
	}
	compiled.opts = o
	return compiled, nil
}

// MustCompile is like Compile but panics on error; intended for
// compile-time-constant paths (e.g. package-level vars).
func MustCompile(path string, opts ...Option) *Path {
	p, err := Compile(path, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the original path expression text.
func (p *Path) String() string { return p.raw }

// FindAll evaluates the path against doc and returns every matching node.
func (p *Path) FindAll(doc any) (NodeList, error) {
	return evalPath(nil, doc, p, &p.opts)
}

// FindIter evaluates the path against doc and streams matching nodes on
// the returned channel; the channel is always closed once evaluation
// completes or fails. Evaluation errors are not deliverable mid-stream
// (the RFC 9535 node list is computed eagerly), so FindIter is a
// convenience wrapper over FindAll for callers that prefer range-over-
// channel; it silently yields no nodes on error.
func (p *Path) FindIter(doc any) <-chan *Node {
	ch := make(chan *Node)
	go func() {
		defer close(ch)
		nodes, err := p.FindAll(doc)
		if err != nil {
			return
		}
		for _, n := range nodes {
			ch <- n
		}
	}()
	return ch
}

// FindAllAsync evaluates the path against doc exactly as FindAll does,
// except Name and Index selectors consult an AsyncIndexer hook on any
// value that implements one (awaiting it instead of indexing directly),
// for documents backed by values whose member access requires I/O. A
// value that never implements AsyncIndexer evaluates identically under
// FindAll and FindAllAsync — neither the set of matches nor their order
// differs between the two.
func (p *Path) FindAllAsync(ctx context.Context, doc any) (NodeList, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	return evalPath(ctx, doc, p, &p.opts)
}

// FindIterAsync is FindAllAsync's channel counterpart: it runs
// FindAllAsync to completion, then sends the resulting nodes on the
// returned channel, and reports the error (if any) on errCh. Nodes are not
// sent while the AsyncIndexer calls are still resolving.
func (p *Path) FindIterAsync(ctx context.Context, doc any) (nodes <-chan *Node, errCh <-chan error) {
	out := make(chan *Node)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		ns, err := p.FindAllAsync(ctx, doc)
		if err != nil {
			errc <- err
			return
		}
		for _, n := range ns {
			select {
			case out <- n:
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
	}()
	return out, errc
}

// Match reports whether path selects at least one node in doc.
func (p *Path) Match(doc any) (bool, error) {
	nodes, err := p.FindAll(doc)
	if err != nil {
		return false, err
	}
	return len(nodes) > 0, nil
}

// Query returns a fluent Query over path's results against doc.
func (p *Path) Query(doc any) *Query {
	nodes, err := p.FindAll(doc)
	return &Query{nodes: nodes, err: err}
}

// FindAll compiles path with opts and evaluates it against doc in one call.
func FindAll(path string, doc any, opts ...Option) (NodeList, error) {
	compiled, err := Compile(path, opts...)
	if err != nil {
		return nil, err
	}
	return compiled.FindAll(doc)
}

// FindIter compiles path with opts and streams matches against doc.
func FindIter(path string, doc any, opts ...Option) (<-chan *Node, error) {
	compiled, err := Compile(path, opts...)
	if err != nil {
		return nil, err
	}
	return compiled.FindIter(doc), nil
}

// FindAllAsync compiles path with opts and evaluates it against doc,
// honoring any AsyncIndexer hooks in doc. See Path.FindAllAsync.
func FindAllAsync(ctx context.Context, path string, doc any, opts ...Option) (NodeList, error) {
	compiled, err := Compile(path, opts...)
	if err != nil {
		return nil, err
	}
	return compiled.FindAllAsync(ctx, doc)
}

// FindIterAsync compiles path with opts and streams matches against doc,
// honoring any AsyncIndexer hooks in doc. See Path.FindIterAsync.
func FindIterAsync(ctx context.Context, path string, doc any, opts ...Option) (nodes <-chan *Node, errCh <-chan error, compileErr error) {
	compiled, err := Compile(path, opts...)
	if err != nil {
		return nil, nil, err
	}
	n, e := compiled.FindIterAsync(ctx, doc)
	return n, e, nil
}

// Match compiles path with opts and reports whether it selects anything in doc.
func Match(path string, doc any, opts ...Option) (bool, error) {
	compiled, err := Compile(path, opts...)
	if err != nil {
		return false, err
	}
	return compiled.Match(doc)
}

// QueryPath compiles path with opts and returns a fluent Query over doc.
func QueryPath(path string, doc any, opts ...Option) (*Query, error) {
	compiled, err := Compile(path, opts...)
	if err != nil {
		return nil, err
	}
	return compiled.Query(doc), nil
}

// Decode is a convenience re-export so callers need not import jsonvalue
// directly for the common case of decoding a document to query.
func Decode(data []byte) (any, error) { return jsonvalue.Decode(data) }
