package jsonpath

import "github.com/jsonpathkit/jsonpathkit/pointer"

// Projection selects how Query.Select resolves each supplementary
// expression's result relative to the node it was evaluated against.
type Projection uint8

const (
	// ProjectionRelative evaluates each expression as a RelativePathExpr
	// rooted at the node being projected.
	ProjectionRelative Projection = iota
	// ProjectionRoot evaluates each expression as an AbsolutePathExpr
	// rooted at the document root.
	ProjectionRoot
	// ProjectionFlat flattens every expression's matches from every node
	// into one combined NodeList, discarding the per-node grouping.
	ProjectionFlat
)

// Query is a fluent, chainable adapter over a NodeList, mirroring the
// library's compiled-path entry points (Path.Query / QueryPath).
type Query struct {
	nodes NodeList
	err   error
}

// Err returns any error produced while compiling or evaluating the
// query that produced this chain; every other method is a no-op once
// Err is non-nil.
func (q *Query) Err() error { return q.err }

// Nodes returns the current NodeList.
func (q *Query) Nodes() (NodeList, error) {
	if q.err != nil {
		return nil, q.err
	}
	return q.nodes, nil
}

func (q *Query) fail(err error) *Query { return &Query{err: err} }

// Limit keeps at most the first n nodes.
func (q *Query) Limit(n int) *Query {
	if q.err != nil {
		return q
	}
	if n < 0 {
		n = 0
	}
	if n > len(q.nodes) {
		n = len(q.nodes)
	}
	return &Query{nodes: q.nodes[:n]}
}

// Skip drops the first n nodes.
func (q *Query) Skip(n int) *Query {
	if q.err != nil {
		return q
	}
	if n < 0 {
		n = 0
	}
	if n > len(q.nodes) {
		n = len(q.nodes)
	}
	return &Query{nodes: q.nodes[n:]}
}

// Tail keeps at most the last n nodes.
func (q *Query) Tail(n int) *Query {
	if q.err != nil {
		return q
	}
	if n < 0 {
		n = 0
	}
	if n > len(q.nodes) {
		n = len(q.nodes)
	}
	return &Query{nodes: q.nodes[len(q.nodes)-n:]}
}

// Take keeps every step'th node starting at offset 0, e.g. Take(2)
// keeps every other node. step <= 0 is treated as 1.
func (q *Query) Take(step int) *Query {
	if q.err != nil {
		return q
	}
	if step <= 0 {
		step = 1
	}
	out := make(NodeList, 0, (len(q.nodes)+step-1)/step)
	for i := 0; i < len(q.nodes); i += step {
		out = append(out, q.nodes[i])
	}
	return &Query{nodes: out}
}

// Tee returns two independent Query chains over the same current nodes,
// so one result set can be branched into two downstream pipelines.
func (q *Query) Tee() (*Query, *Query) {
	if q.err != nil {
		return q, q
	}
	a := &Query{nodes: q.nodes}
	b := &Query{nodes: q.nodes}
	return a, b
}

// Values returns the underlying value of every node.
func (q *Query) Values() ([]any, error) {
	if q.err != nil {
		return nil, q.err
	}
	return q.nodes.Values(), nil
}

// Locations returns the normalized JSONPath location string of every node.
func (q *Query) Locations() ([]string, error) {
	if q.err != nil {
		return nil, q.err
	}
	return q.nodes.Locations(), nil
}

// Item pairs a node's value with its normalized location.
type Item struct {
	Value    any
	Location string
}

// Items returns the (value, location) pair of every node.
func (q *Query) Items() ([]Item, error) {
	if q.err != nil {
		return nil, q.err
	}
	out := make([]Item, len(q.nodes))
	for i, n := range q.nodes {
		out[i] = Item{Value: n.Value, Location: n.Location()}
	}
	return out, nil
}

// Pointers returns every node's location as an RFC 6901 JSON Pointer.
func (q *Query) Pointers() ([]*pointer.Pointer, error) {
	if q.err != nil {
		return nil, q.err
	}
	out := make([]*pointer.Pointer, len(q.nodes))
	for i, n := range q.nodes {
		out[i] = n.Pointer()
	}
	return out, nil
}

// First returns the first node, or nil if the result is empty.
func (q *Query) First() (*Node, error) {
	if q.err != nil {
		return nil, q.err
	}
	if len(q.nodes) == 0 {
		return nil, nil
	}
	return q.nodes[0], nil
}

// Last returns the last node, or nil if the result is empty.
func (q *Query) Last() (*Node, error) {
	if q.err != nil {
		return nil, q.err
	}
	if len(q.nodes) == 0 {
		return nil, nil
	}
	return q.nodes[len(q.nodes)-1], nil
}

// Select evaluates each of exprs (compiled sub-paths) against the current
// nodes according to projection and returns the combined NodeList.
//
// ProjectionRelative and ProjectionRoot preserve per-node grouping order
// (all of node i's matches before node i+1's); ProjectionFlat returns the
// union of every node's matches, deduplicated by location.
func (q *Query) Select(projection Projection, exprs ...*Path) *Query {
	if q.err != nil {
		return q
	}
	var out NodeList
	for _, n := range q.nodes {
		for _, expr := range exprs {
			var matches NodeList
			var err error
			switch projection {
			case ProjectionRoot:
				matches, err = expr.FindAll(n.root.Value)
			default:
				matches, err = evalSegmentsFrom(n, expr.Segments, &evalContext{
					root:      n.root,
					maxDepth:  expr.opts.MaxRecursionDepth,
					regs:      expr.opts.resolveRegistry(),
					filterCtx: map[string]*Node{"root": n.root},
					log:       expr.opts.logger(),
					ctx:       nil,
				})
			}
			if err != nil {
				return q.fail(err)
			}
			out = append(out, matches...)
		}
	}
	if projection == ProjectionFlat {
		out = unionNodes(out, nil)
	}
	return &Query{nodes: out}
}
