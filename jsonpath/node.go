package jsonpath

import (
	"github.com/jsonpathkit/jsonpathkit/internal/pathbuild"
	"github.com/jsonpathkit/jsonpathkit/pointer"
)

// Node is one (value, location) pair produced by evaluating a Path against
// a document. Its normalized location is computed lazily from the chain of
// selectors that reached it, per the normalized-path algorithm.
type Node struct {
	Value any

	parent   *Node
	root     *Node
	selKind  SelectorKind
	name     string
	index    int64
	hasKey   bool
	children []*Node
}

// NodeList is an ordered, possibly-empty sequence of Nodes: the result of
// evaluating a Path or a sub-query within a filter expression.
type NodeList []*Node

// Values returns the underlying value of every node, in order.
func (nl NodeList) Values() []any {
	out := make([]any, len(nl))
	for i, n := range nl {
		out[i] = n.Value
	}
	return out
}

// Locations returns the normalized JSONPath string of every node, in order.
func (nl NodeList) Locations() []string {
	out := make([]string, len(nl))
	for i, n := range nl {
		out[i] = n.Location()
	}
	return out
}

func newRootNode(value any) *Node {
	n := &Node{Value: value}
	n.root = n
	return n
}

func (n *Node) child(kind SelectorKind, name string, index int64, value any) *Node {
	c := &Node{Value: value, parent: n, root: n.root, selKind: kind, name: name, index: index, hasKey: true}
	n.children = append(n.children, c)
	return c
}

// Parent returns the node's immediate parent, or nil for the root node.
func (n *Node) Parent() *Node { return n.parent }

// Root returns the document root node.
func (n *Node) Root() *Node { return n.root }

// Children returns the matches produced from this node so far. A node's
// children are populated only as it is revisited during traversal (e.g.
// once a wildcard or filter segment has expanded it), so this reflects
// whatever has been visited at the time it's called — typically called
// after FindAll/FindIter has fully evaluated, via a sibling match's Parent().
func (n *Node) Children() []*Node { return n.children }

// Key returns the object key (for nodes reached via a name selector) or the
// array index (for nodes reached via an index/slice/wildcard selector) that
// located this node within its parent. The zero value of each return applies
// to the root node, which has neither.
func (n *Node) Key() (name string, index int64, isName bool) {
	return n.name, n.index, n.hasKey && n.selKind == SelName
}

// Location returns the node's normalized JSONPath location string, e.g.
// $['store']['book'][0].
func (n *Node) Location() string {
	var chain []*Node
	for cur := n; cur != nil && cur.parent != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	b := pathbuild.Get()
	defer pathbuild.Put(b)
	for i := len(chain) - 1; i >= 0; i-- {
		c := chain[i]
		if c.selKind == SelIndex {
			b.PushIndex(c.index)
		} else {
			b.PushName(c.name)
		}
	}
	return b.String()
}

// Pointer returns the node's location as an RFC 6901 JSON Pointer,
// equivalent to Location but in "/a/0" form instead of bracket notation.
func (n *Node) Pointer() *pointer.Pointer {
	var chain []*Node
	for cur := n; cur != nil && cur.parent != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	tokens := make([]pointer.Token, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		c := chain[i]
		if c.selKind == SelIndex {
			tokens = append(tokens, pointer.IndexToken(c.index))
		} else {
			tokens = append(tokens, pointer.NameToken(c.name))
		}
	}
	return pointer.FromParts(tokens...)
}
