package jsonpath

import "github.com/jsonpathkit/jsonpathkit/jsonvalue"

// FilterResult is the tagged result of evaluating a FilterExpr, matching
// RFC 9535 §2.4.1's three-type system (ValueType, LogicalType, NodesType).
type FilterResult struct {
	Kind  ValueKind
	Value any
	Nodes []*Node
}

func valueResult(v any) FilterResult { return FilterResult{Kind: ValueTypeKind, Value: v} }
func undefinedResult() FilterResult { return FilterResult{Kind: ValueTypeKind, Value: jsonvalue.Undefined} }
func logicalResult(b bool) FilterResult { return FilterResult{Kind: LogicalTypeKind, Value: b} }
func nodesResult(nodes []*Node) FilterResult { return FilterResult{Kind: NodesTypeKind, Nodes: nodes} }

// scalar collapses a FilterResult down to a single comparable value: a
// NodesType result with exactly one node yields that node's value, any
// other NodesType result (zero or many nodes) yields Undefined.
func (r FilterResult) scalar() any {
	switch r.Kind {
	case NodesTypeKind:
		if len(r.Nodes) == 1 {
			return r.Nodes[0].Value
		}
		return jsonvalue.Undefined
	default:
		return r.Value
	}
}

// truthy reports the result's boolean coercion for use as a bare filter
// predicate: a NodesType result is true iff it is non-empty; a
// LogicalType result is its bool; a ValueType result uses
// jsonvalue.Truthy (Undefined/nil are false).
func (r FilterResult) truthy() bool {
	switch r.Kind {
	case NodesTypeKind:
		return len(r.Nodes) > 0
	case LogicalTypeKind:
		b, _ := r.Value.(bool)
		return b
	default:
		return jsonvalue.Truthy(r.Value)
	}
}

func asObject(v any) (*jsonvalue.Object, bool) {
	obj, ok := v.(*jsonvalue.Object)
	return obj, ok
}

func typeName(v any) string {
	return jsonvalue.TypeName(v)
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
