package jsonpath

import "strings"

// ValueKind classifies the three result types of a well-typed filter
// expression per RFC 9535 §2.4.1.
type ValueKind uint8

const (
	// ValueTypeKind is a single JSON value, Nothing/Undefined, or a
	// logical true/false coerced for use in a value position.
	ValueTypeKind ValueKind = iota
	// LogicalTypeKind is a boolean produced by a comparison, existence
	// test, or logical combinator.
	LogicalTypeKind
	// NodesTypeKind is the (possibly empty) node list a query produces.
	NodesTypeKind
)

func (k ValueKind) String() string {
	switch k {
	case LogicalTypeKind:
		return "LogicalType"
	case NodesTypeKind:
		return "NodesType"
	default:
		return "ValueType"
	}
}

// FunctionSig declares a filter function's parameter and result types for
// compile-time well-typedness checking.
type FunctionSig struct {
	Params []ValueKind
	Result ValueKind
}

// Function is the runtime behavior of a registered filter function. args
// are already-evaluated results matching the declared ValueKind of each
// parameter position; a NodesType argument is a FilterResult carrying its
// nodes in the Nodes field.
type Function func(args []FilterResult) FilterResult

// FunctionRegistry holds the name -> (signature, implementation) bindings
// consulted both at parse time (arity/type checking, unknown-name
// rejection) and at evaluation time (dispatch).
type FunctionRegistry struct {
	sigs  map[string]FunctionSig
	impls map[string]Function
	regex *regexCache
}

// NewFunctionRegistry returns a registry pre-populated with the built-in
// RFC 9535 functions (length, count, match, search, value) and this
// engine's non-standard extensions (keys, is, typeof, startswith).
func NewFunctionRegistry() *FunctionRegistry {
	return newFunctionRegistry(newRegexCache(defaultRegexCacheCapacity, false, false, NopLogger{}))
}

func newFunctionRegistry(regex *regexCache) *FunctionRegistry {
	r := &FunctionRegistry{sigs: make(map[string]FunctionSig), impls: make(map[string]Function), regex: regex}
	registerBuiltins(r)
	return r
}

// Register adds or replaces a function binding. It is safe to call before
// a registry is used to Compile any path; registries are not safe for
// concurrent mutation while in use.
func (r *FunctionRegistry) Register(name string, sig FunctionSig, fn Function) {
	r.sigs[name] = sig
	r.impls[name] = fn
}

func (r *FunctionRegistry) lookup(name string) (FunctionSig, bool) {
	sig, ok := r.sigs[name]
	return sig, ok
}

func (r *FunctionRegistry) call(name string, args []FilterResult) (FilterResult, bool) {
	fn, ok := r.impls[name]
	if !ok {
		return FilterResult{}, false
	}
	return fn(args), true
}

func registerBuiltins(r *FunctionRegistry) {
	r.Register("length", FunctionSig{Params: []ValueKind{ValueTypeKind}, Result: ValueTypeKind}, fnLength)
	r.Register("count", FunctionSig{Params: []ValueKind{NodesTypeKind}, Result: ValueTypeKind}, fnCount)
	r.Register("match", FunctionSig{Params: []ValueKind{ValueTypeKind, ValueTypeKind}, Result: LogicalTypeKind}, r.fnMatch)
	r.Register("search", FunctionSig{Params: []ValueKind{ValueTypeKind, ValueTypeKind}, Result: LogicalTypeKind}, r.fnSearch)
	r.Register("value", FunctionSig{Params: []ValueKind{NodesTypeKind}, Result: ValueTypeKind}, fnValue)

	// Non-standard extensions.
	r.Register("keys", FunctionSig{Params: []ValueKind{NodesTypeKind}, Result: NodesTypeKind}, fnKeys)
	r.Register("is", FunctionSig{Params: []ValueKind{ValueTypeKind, ValueTypeKind}, Result: LogicalTypeKind}, fnIs)
	r.Register("typeof", FunctionSig{Params: []ValueKind{ValueTypeKind}, Result: ValueTypeKind}, fnTypeof)
	r.Register("startswith", FunctionSig{Params: []ValueKind{ValueTypeKind, ValueTypeKind}, Result: LogicalTypeKind}, fnStartsWith)
}

func fnLength(args []FilterResult) FilterResult {
	v := args[0].Value
	switch val := v.(type) {
	case string:
		return valueResult(int64(len([]rune(val))))
	case []any:
		return valueResult(int64(len(val)))
	default:
		if obj, ok := asObject(v); ok {
			return valueResult(int64(obj.Len()))
		}
	}
	return undefinedResult()
}

func fnCount(args []FilterResult) FilterResult {
	return valueResult(int64(len(args[0].Nodes)))
}

func (r *FunctionRegistry) fnMatch(args []FilterResult) FilterResult {
	s, ok1 := args[0].Value.(string)
	p, ok2 := args[1].Value.(string)
	if !ok1 || !ok2 {
		return logicalResult(false)
	}
	return logicalResult(r.regex.fullMatch(s, p))
}

func (r *FunctionRegistry) fnSearch(args []FilterResult) FilterResult {
	s, ok1 := args[0].Value.(string)
	p, ok2 := args[1].Value.(string)
	if !ok1 || !ok2 {
		return logicalResult(false)
	}
	return logicalResult(r.regex.search(s, p))
}

func fnValue(args []FilterResult) FilterResult {
	if len(args[0].Nodes) != 1 {
		return undefinedResult()
	}
	return valueResult(args[0].Nodes[0].Value)
}

func fnKeys(args []FilterResult) FilterResult {
	if len(args[0].Nodes) != 1 {
		return FilterResult{Nodes: nil}
	}
	obj, ok := asObject(args[0].Nodes[0].Value)
	if !ok {
		return FilterResult{Nodes: nil}
	}
	n := args[0].Nodes[0]
	var out []*Node
	for _, k := range obj.Keys() {
		v, _ := obj.Get(k)
		out = append(out, n.child(SelName, k, 0, v))
	}
	return FilterResult{Nodes: out}
}

func fnIs(args []FilterResult) FilterResult {
	return logicalResult(typeName(args[0].Value) == asString(args[1].Value))
}

func fnTypeof(args []FilterResult) FilterResult {
	return valueResult(typeName(args[0].Value))
}

func fnStartsWith(args []FilterResult) FilterResult {
	s, ok1 := args[0].Value.(string)
	prefix, ok2 := args[1].Value.(string)
	if !ok1 || !ok2 {
		return logicalResult(false)
	}
	return logicalResult(strings.HasPrefix(s, prefix))
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
