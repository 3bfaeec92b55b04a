package jsonpath

import (
	"context"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jsonpathkit/jsonpathkit/jsonvalue"
	"github.com/jsonpathkit/jsonpathkit/pkerrors"
)

// evalContext carries the state threaded through evaluation of a single
// Path against a single document: the document root (for $ inside
// filters), the recursion-depth ceiling, the function registry (and its
// regex cache), and the non-standard #name context bindings visible to
// filter expressions evaluated at the current position. ctx is non-nil
// only when evaluation was started through an Async entry point, in which
// case Name/Index selectors consult a value's AsyncIndexer hook before
// falling back to the same synchronous lookup FindAll uses — every other
// selector kind runs through the exact same code regardless, so sync and
// async evaluation never diverge in ordering or results.
type evalContext struct {
	root      *Node
	maxDepth  int
	regs      *FunctionRegistry
	filterCtx map[string]*Node
	log       Logger
	ctx       context.Context
}

// evalPath evaluates path against root and returns the matching nodes in
// document order, applying any non-standard compound (| and &) suffixes
// against the accumulated child-segment result. A nil ctx selects purely
// synchronous indexing; see evalContext.
func evalPath(ctx context.Context, root any, path *Path, opts *Options) (NodeList, error) {
	regs := opts.resolveRegistry()
	rootNode := newRootNode(root)
	ectx := &evalContext{
		root:      rootNode,
		maxDepth:  opts.MaxRecursionDepth,
		regs:      regs,
		filterCtx: map[string]*Node{"root": rootNode},
		log:       opts.logger(),
		ctx:       ctx,
	}

	nodes, err := evalSegmentsFrom(rootNode, path.Segments, ectx)
	if err != nil {
		return nil, err
	}
	if len(path.Compound) == 0 {
		return nodes, nil
	}

	result := nodes
	for _, part := range path.Compound {
		sub, err := evalSegmentsFrom(rootNode, part.Segments, ectx)
		if err != nil {
			return nil, err
		}
		if part.Op == CompoundUnion {
			result = unionNodes(result, sub)
		} else {
			result = intersectNodes(result, sub)
		}
	}
	return result, nil
}

func evalSegmentsFrom(start *Node, segments []Segment, ectx *evalContext) (NodeList, error) {
	nodes := NodeList{start}
	for _, seg := range segments {
		var err error
		nodes, err = evalSegment(nodes, seg, ectx)
		if err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func evalSegment(nodes NodeList, seg Segment, ectx *evalContext) (NodeList, error) {
	var out NodeList
	for _, n := range nodes {
		if seg.Descendant {
			descendants, err := collectDescendants(n, ectx.maxDepth, ectx.log)
			if err != nil {
				return nil, err
			}
			for _, d := range descendants {
				sel, err := applySelectors(d, seg.Selectors, ectx)
				if err != nil {
					return nil, err
				}
				out = append(out, sel...)
			}
		} else {
			sel, err := applySelectors(n, seg.Selectors, ectx)
			if err != nil {
				return nil, err
			}
			out = append(out, sel...)
		}
	}
	return out, nil
}

// collectDescendants returns n and every descendant reachable through
// nested objects/arrays, pre-order, enforcing maxDepth as a ceiling on
// container nesting below n.
func collectDescendants(n *Node, maxDepth int, log Logger) (NodeList, error) {
	if log == nil {
		log = NopLogger{}
	}
	margin := maxDepth / 10
	if margin < 1 {
		margin = 1
	}
	warnThreshold := maxDepth - margin
	warned := false
	var out NodeList
	var walk func(cur *Node, depth int) error
	walk = func(cur *Node, depth int) error {
		out = append(out, cur)
		if !warned && depth >= warnThreshold && depth < maxDepth {
			warned = true
			log.Warn("descendant segment approaching max recursion depth", "depth", depth, "max_depth", maxDepth)
		}
		switch v := cur.Value.(type) {
		case *jsonvalue.Object:
			if v.Len() > 0 && depth >= maxDepth {
				return &pkerrors.RecursionError{Segment: "..", MaxDepth: maxDepth}
			}
			for _, k := range v.Keys() {
				val, _ := v.Get(k)
				if err := walk(cur.child(SelName, k, 0, val), depth+1); err != nil {
					return err
				}
			}
		case []any:
			if len(v) > 0 && depth >= maxDepth {
				return &pkerrors.RecursionError{Segment: "..", MaxDepth: maxDepth}
			}
			for i, val := range v {
				if err := walk(cur.child(SelIndex, "", int64(i), val), depth+1); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walk(n, 0); err != nil {
		return nil, err
	}
	return out, nil
}

func allChildren(n *Node) NodeList {
	var out NodeList
	switch v := n.Value.(type) {
	case *jsonvalue.Object:
		for _, k := range v.Keys() {
			val, _ := v.Get(k)
			out = append(out, n.child(SelName, k, 0, val))
		}
	case []any:
		for i, val := range v {
			out = append(out, n.child(SelIndex, "", int64(i), val))
		}
	}
	return out
}

func applySelectors(n *Node, sels []Selector, ectx *evalContext) (NodeList, error) {
	var out NodeList
	for _, sel := range sels {
		switch sel.Kind {
		case SelName:
			v, present, err := resolveName(ectx, n.Value, sel.Name)
			if err != nil {
				return nil, err
			}
			if present {
				out = append(out, n.child(SelName, sel.Name, 0, v))
			}
		case SelIndex:
			v, idx, present, err := resolveIndex(ectx, n.Value, sel.Index)
			if err != nil {
				return nil, err
			}
			if present {
				out = append(out, n.child(SelIndex, "", idx, v))
			}
		case SelWildcard:
			out = append(out, allChildren(n)...)
		case SelSlice:
			if arr, ok := n.Value.([]any); ok {
				for _, i := range sliceIndices(sel.Slice, len(arr)) {
					out = append(out, n.child(SelIndex, "", int64(i), arr[i]))
				}
			}
		case SelFilter:
			filterCtx := childFilterContext(ectx, n)
			for _, c := range allChildren(n) {
				res, err := evalFilterExpr(sel.Filter, c, filterCtx)
				if err != nil {
					return nil, err
				}
				if res.truthy() {
					out = append(out, c)
				}
			}
		case SelKeys:
			if obj, ok := asObject(n.Value); ok {
				for _, k := range obj.Keys() {
					out = append(out, n.child(SelName, k, 0, k))
				}
			}
		case SelKeysFilter:
			if obj, ok := asObject(n.Value); ok {
				filterCtx := childFilterContext(ectx, n)
				for _, k := range obj.Keys() {
					kn := n.child(SelName, k, 0, k)
					res, err := evalFilterExpr(sel.Filter, kn, filterCtx)
					if err != nil {
						return nil, err
					}
					if res.truthy() {
						out = append(out, kn)
					}
				}
			}
		}
	}
	return out, nil
}

func childFilterContext(ectx *evalContext, parent *Node) *evalContext {
	ctx := make(map[string]*Node, len(ectx.filterCtx)+1)
	for k, v := range ectx.filterCtx {
		ctx[k] = v
	}
	ctx["parent"] = parent
	return &evalContext{root: ectx.root, maxDepth: ectx.maxDepth, regs: ectx.regs, filterCtx: ctx, log: ectx.log, ctx: ectx.ctx}
}

// lookupName resolves a Name selector against obj. A direct key match is
// tried first; failing that, both the selector name and every object key
// are folded to Unicode Normalization Form C so a precomposed name (e.g.
// "café" with U+00E9) matches a decomposed one ("café" with e + U+0301),
// since RFC 9535 member-name comparison is defined over scalar sequences
// rather than byte-identical strings.
func lookupName(obj *jsonvalue.Object, name string) (any, bool) {
	if v, ok := obj.Get(name); ok {
		return v, true
	}
	folded := norm.NFC.String(name)
	if folded != name {
		if v, ok := obj.Get(folded); ok {
			return v, true
		}
	}
	for _, k := range obj.Keys() {
		if k != folded && norm.NFC.String(k) == folded {
			return obj.Get(k)
		}
	}
	return nil, false
}

func normalizeIndex(i int64, length int) int {
	if i < 0 {
		i += int64(length)
	}
	return int(i)
}

// sliceIndices implements RFC 9535 §2.3.4.2.2's slice-selection algorithm.
func sliceIndices(s SliceArgs, length int) []int {
	step := int64(1)
	if s.Step != nil {
		step = *s.Step
	}
	if step == 0 {
		return nil
	}
	n := int64(length)
	clamp := func(i, lo, hi int64) int64 {
		if i < lo {
			return lo
		}
		if i > hi {
			return hi
		}
		return i
	}
	normalize := func(i int64) int64 {
		if i < 0 {
			i += n
		}
		return i
	}

	var start, end int64
	if step > 0 {
		if s.Start != nil {
			start = clamp(normalize(*s.Start), 0, n)
		} else {
			start = 0
		}
		if s.Stop != nil {
			end = clamp(normalize(*s.Stop), 0, n)
		} else {
			end = n
		}
	} else {
		if s.Start != nil {
			start = clamp(normalize(*s.Start), -1, n-1)
		} else {
			start = n - 1
		}
		if s.Stop != nil {
			end = clamp(normalize(*s.Stop), -1, n-1)
		} else {
			end = -1
		}
	}

	var out []int
	if step > 0 {
		for i := start; i < end; i += step {
			out = append(out, int(i))
		}
	} else {
		for i := start; i > end; i += step {
			out = append(out, int(i))
		}
	}
	return out
}

func unionNodes(a, b NodeList) NodeList {
	seen := make(map[string]bool, len(a)+len(b))
	out := make(NodeList, 0, len(a)+len(b))
	for _, n := range a {
		loc := n.Location()
		if !seen[loc] {
			seen[loc] = true
			out = append(out, n)
		}
	}
	for _, n := range b {
		loc := n.Location()
		if !seen[loc] {
			seen[loc] = true
			out = append(out, n)
		}
	}
	return out
}

func intersectNodes(a, b NodeList) NodeList {
	inB := make(map[string]bool, len(b))
	for _, n := range b {
		inB[n.Location()] = true
	}
	seen := make(map[string]bool, len(a))
	var out NodeList
	for _, n := range a {
		loc := n.Location()
		if inB[loc] && !seen[loc] {
			seen[loc] = true
			out = append(out, n)
		}
	}
	return out
}

// --- Filter expression evaluation ---

func evalFilterExpr(expr FilterExpr, cur *Node, ectx *evalContext) (FilterResult, error) {
	switch e := expr.(type) {
	case NilLiteral:
		return valueResult(nil), nil
	case UndefinedLiteral:
		return undefinedResult(), nil
	case BoolLiteral:
		return valueResult(e.Value), nil
	case IntLiteral:
		return valueResult(e.Value), nil
	case FloatLiteral:
		return valueResult(e.Value), nil
	case StringLiteral:
		return valueResult(e.Value), nil
	case RegexLiteral:
		return valueResult(e.Pattern), nil
	case ListLiteral:
		vals := make([]any, 0, len(e.Items))
		for _, item := range e.Items {
			r, err := evalFilterExpr(item, cur, ectx)
			if err != nil {
				return FilterResult{}, err
			}
			vals = append(vals, r.scalar())
		}
		return valueResult(vals), nil
	case *NotExpr:
		r, err := evalFilterExpr(e.X, cur, ectx)
		if err != nil {
			return FilterResult{}, err
		}
		return logicalResult(!r.truthy()), nil
	case *AndExpr:
		l, err := evalFilterExpr(e.Left, cur, ectx)
		if err != nil {
			return FilterResult{}, err
		}
		if !l.truthy() {
			return logicalResult(false), nil
		}
		r, err := evalFilterExpr(e.Right, cur, ectx)
		if err != nil {
			return FilterResult{}, err
		}
		return logicalResult(r.truthy()), nil
	case *OrExpr:
		l, err := evalFilterExpr(e.Left, cur, ectx)
		if err != nil {
			return FilterResult{}, err
		}
		if l.truthy() {
			return logicalResult(true), nil
		}
		r, err := evalFilterExpr(e.Right, cur, ectx)
		if err != nil {
			return FilterResult{}, err
		}
		return logicalResult(r.truthy()), nil
	case *CompareExpr:
		l, err := evalFilterExpr(e.Left, cur, ectx)
		if err != nil {
			return FilterResult{}, err
		}
		r, err := evalFilterExpr(e.Right, cur, ectx)
		if err != nil {
			return FilterResult{}, err
		}
		return logicalResult(compareValues(e.Op, l.scalar(), r.scalar())), nil
	case *MembershipExpr:
		l, err := evalFilterExpr(e.Left, cur, ectx)
		if err != nil {
			return FilterResult{}, err
		}
		r, err := evalFilterExpr(e.Right, cur, ectx)
		if err != nil {
			return FilterResult{}, err
		}
		if e.Op == MemIn {
			return logicalResult(membershipContains(r, l.scalar())), nil
		}
		return logicalResult(membershipContains(l, r.scalar())), nil
	case *MatchRegexExpr:
		l, err := evalFilterExpr(e.Left, cur, ectx)
		if err != nil {
			return FilterResult{}, err
		}
		var pattern string
		if lit, ok := e.Right.(RegexLiteral); ok {
			pattern = lit.Pattern
		} else {
			r, err := evalFilterExpr(e.Right, cur, ectx)
			if err != nil {
				return FilterResult{}, err
			}
			pattern, _ = r.scalar().(string)
		}
		s, _ := l.scalar().(string)
		return logicalResult(ectx.regs.regex.fullMatch(s, pattern)), nil
	case *RelativePathExpr:
		nodes, err := evalSegmentsFrom(cur, e.Segments, ectx)
		if err != nil {
			return FilterResult{}, err
		}
		return nodesResult(nodes), nil
	case *AbsolutePathExpr:
		nodes, err := evalSegmentsFrom(ectx.root, e.Segments, ectx)
		if err != nil {
			return FilterResult{}, err
		}
		return nodesResult(nodes), nil
	case *FilterContextPathExpr:
		base, ok := ectx.filterCtx[e.Name]
		if !ok {
			return undefinedResult(), nil
		}
		nodes, err := evalSegmentsFrom(base, e.Segments, ectx)
		if err != nil {
			return FilterResult{}, err
		}
		return nodesResult(nodes), nil
	case CurrentKeyExpr:
		if !cur.hasKey {
			return undefinedResult(), nil
		}
		if cur.selKind == SelIndex {
			return valueResult(cur.index), nil
		}
		return valueResult(cur.name), nil
	case *FunctionCallExpr:
		return evalFunctionCall(e, cur, ectx)
	default:
		return undefinedResult(), nil
	}
}

func evalFunctionCall(e *FunctionCallExpr, cur *Node, ectx *evalContext) (FilterResult, error) {
	sig, ok := ectx.regs.lookup(e.Name)
	if !ok {
		return undefinedResult(), nil
	}
	args := make([]FilterResult, len(e.Args))
	for i, a := range e.Args {
		want := ValueTypeKind
		if i < len(sig.Params) {
			want = sig.Params[i]
		}
		r, err := evalFilterExpr(a, cur, ectx)
		if err != nil {
			return FilterResult{}, err
		}
		if r.Kind == NodesTypeKind {
			switch want {
			case LogicalTypeKind:
				r = logicalResult(len(r.Nodes) > 0)
			case ValueTypeKind:
				r = valueResult(r.scalar())
			}
		}
		args[i] = r
	}
	res, ok := ectx.regs.call(e.Name, args)
	if !ok {
		return undefinedResult(), nil
	}
	return res, nil
}

func membershipContains(container FilterResult, needle any) bool {
	if container.Kind == NodesTypeKind {
		for _, n := range container.Nodes {
			if jsonvalue.DeepEqual(n.Value, needle) {
				return true
			}
		}
		return false
	}
	switch v := container.Value.(type) {
	case []any:
		for _, item := range v {
			if jsonvalue.DeepEqual(item, needle) {
				return true
			}
		}
	case *jsonvalue.Object:
		found := false
		v.Range(func(_ string, val any) bool {
			if jsonvalue.DeepEqual(val, needle) {
				found = true
				return false
			}
			return true
		})
		return found
	case string:
		if s, ok := needle.(string); ok {
			return strings.Contains(v, s)
		}
	}
	return false
}

func compareValues(op CompareOp, a, b any) bool {
	switch op {
	case CmpEq:
		return jsonvalue.DeepEqual(a, b)
	case CmpNe:
		return !jsonvalue.DeepEqual(a, b)
	case CmpLt:
		r, ok := lessThan(a, b)
		return ok && r
	case CmpLe:
		if jsonvalue.DeepEqual(a, b) {
			return true
		}
		r, ok := lessThan(a, b)
		return ok && r
	case CmpGt:
		r, ok := lessThan(b, a)
		return ok && r
	default: // CmpGe
		if jsonvalue.DeepEqual(a, b) {
			return true
		}
		r, ok := lessThan(b, a)
		return ok && r
	}
}

func lessThan(a, b any) (result, comparable bool) {
	if af, ok := asNumber(a); ok {
		if bf, ok2 := asNumber(b); ok2 {
			return af < bf, true
		}
	}
	if as, ok := a.(string); ok {
		if bs, ok2 := b.(string); ok2 {
			return as < bs, true
		}
	}
	return false, false
}
