package jsonpath

import "github.com/jsonpathkit/jsonpathkit/pkerrors"

// typecheckPath statically validates every filter expression reachable
// from path's segments (including compound parts and filters nested
// inside sub-queries), per RFC 9535 §2.4.3's well-typedness rules:
// comparison and match operands must be ValueType (a literal, a singular
// query, or a function call declared to return ValueType); a bare
// function call used as an entire filter predicate must return
// LogicalType or NodesType, never ValueType alone.
func typecheckPath(path *Path, strict bool, regs *FunctionRegistry) error {
	if err := typecheckSegments(path.Segments, strict, regs); err != nil {
		return err
	}
	for _, part := range path.Compound {
		if err := typecheckSegments(part.Segments, strict, regs); err != nil {
			return err
		}
	}
	return nil
}

func typecheckSegments(segs []Segment, strict bool, regs *FunctionRegistry) error {
	for _, seg := range segs {
		for _, sel := range seg.Selectors {
			if sel.Filter == nil {
				continue
			}
			if err := typecheckLogical(sel.Filter, strict, regs); err != nil {
				return err
			}
		}
	}
	return nil
}

// paramKind returns expr's natural produced type, ignoring any
// value-position dispensation a singular query receives in a comparison.
func paramKind(expr FilterExpr, regs *FunctionRegistry) ValueKind {
	switch e := expr.(type) {
	case *FunctionCallExpr:
		if regs != nil {
			if sig, ok := regs.lookup(e.Name); ok {
				return sig.Result
			}
		}
		return ValueTypeKind
	case *RelativePathExpr, *AbsolutePathExpr, *FilterContextPathExpr, CurrentKeyExpr:
		return NodesTypeKind
	case *AndExpr, *OrExpr, *NotExpr, *CompareExpr, *MembershipExpr, *MatchRegexExpr:
		return LogicalTypeKind
	default:
		return ValueTypeKind
	}
}

func isSingularQueryExpr(expr FilterExpr) bool {
	switch e := expr.(type) {
	case *RelativePathExpr:
		return isSingularQuery(e.Segments)
	case *AbsolutePathExpr:
		return isSingularQuery(e.Segments)
	case *FilterContextPathExpr:
		return isSingularQuery(e.Segments)
	case CurrentKeyExpr:
		return true
	default:
		return false
	}
}

// typecheckValuePosition validates that expr may appear where a ValueType
// operand is required (a comparison or match operand): a literal, a
// singular query (including the bare #-current-key), or a function call
// declared to return ValueType.
func typecheckValuePosition(expr FilterExpr, strict bool, regs *FunctionRegistry, ctx string) error {
	if err := typecheckNestedQueries(expr, strict, regs); err != nil {
		return err
	}
	switch paramKind(expr, regs) {
	case NodesTypeKind:
		if !isSingularQueryExpr(expr) {
			return &pkerrors.TypeError{Message: "non-singular query cannot be used as a " + ctx + " operand"}
		}
	case LogicalTypeKind:
		return &pkerrors.TypeError{Message: "logical expression cannot be used as a " + ctx + " operand"}
	}
	if fc, ok := expr.(*FunctionCallExpr); ok {
		return typecheckFunctionCall(fc, strict, regs)
	}
	return nil
}

// typecheckLogical validates that expr may appear where a LogicalType
// value is required: a filter selector's whole predicate, or an operand
// of &&, ||, or !.
func typecheckLogical(expr FilterExpr, strict bool, regs *FunctionRegistry) error {
	switch e := expr.(type) {
	case *AndExpr:
		if err := typecheckLogical(e.Left, strict, regs); err != nil {
			return err
		}
		return typecheckLogical(e.Right, strict, regs)
	case *OrExpr:
		if err := typecheckLogical(e.Left, strict, regs); err != nil {
			return err
		}
		return typecheckLogical(e.Right, strict, regs)
	case *NotExpr:
		return typecheckLogical(e.X, strict, regs)
	case *CompareExpr:
		if err := typecheckValuePosition(e.Left, strict, regs, "comparison"); err != nil {
			return err
		}
		return typecheckValuePosition(e.Right, strict, regs, "comparison")
	case *MembershipExpr:
		if err := typecheckValuePosition(e.Left, strict, regs, "membership"); err != nil {
			return err
		}
		return typecheckNestedQueries(e.Right, strict, regs)
	case *MatchRegexExpr:
		if err := typecheckValuePosition(e.Left, strict, regs, "match"); err != nil {
			return err
		}
		return typecheckValuePosition(e.Right, strict, regs, "match")
	case *RelativePathExpr:
		return typecheckSegments(e.Segments, strict, regs)
	case *AbsolutePathExpr:
		return typecheckSegments(e.Segments, strict, regs)
	case *FilterContextPathExpr:
		return typecheckSegments(e.Segments, strict, regs)
	case CurrentKeyExpr:
		return nil
	case *FunctionCallExpr:
		if err := typecheckFunctionCall(e, strict, regs); err != nil {
			return err
		}
		if regs != nil {
			if sig, ok := regs.lookup(e.Name); ok && sig.Result == ValueTypeKind {
				return &pkerrors.TypeError{Message: "function " + e.Name + "() returns ValueType and cannot be used as a standalone filter predicate"}
			}
		}
		return nil
	case ListLiteral:
		return &pkerrors.TypeError{Message: "a list literal cannot be used as a standalone filter predicate"}
	default:
		// Bare literal (true/false/string/number/...) used as the whole
		// predicate: always a legal constant-valued test.
		return nil
	}
}

// typecheckNestedQueries walks any embedded path segments of expr (its own
// selectors' filters) without imposing a type requirement on expr itself;
// used for the "right side of in/contains" and "whole expr" positions
// where a NodesType result is acceptable.
func typecheckNestedQueries(expr FilterExpr, strict bool, regs *FunctionRegistry) error {
	switch e := expr.(type) {
	case *RelativePathExpr:
		return typecheckSegments(e.Segments, strict, regs)
	case *AbsolutePathExpr:
		return typecheckSegments(e.Segments, strict, regs)
	case *FilterContextPathExpr:
		return typecheckSegments(e.Segments, strict, regs)
	case *FunctionCallExpr:
		return typecheckFunctionCall(e, strict, regs)
	case ListLiteral:
		for _, item := range e.Items {
			if err := typecheckNestedQueries(item, strict, regs); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

func typecheckFunctionCall(fc *FunctionCallExpr, strict bool, regs *FunctionRegistry) error {
	if regs == nil {
		return nil
	}
	sig, ok := regs.lookup(fc.Name)
	if !ok {
		return &pkerrors.NameError{Name: fc.Name}
	}
	if len(fc.Args) != len(sig.Params) {
		return &pkerrors.TypeError{Message: "function " + fc.Name + "() expects " + itoa(len(sig.Params)) + " argument(s), got " + itoa(len(fc.Args))}
	}
	for i, arg := range fc.Args {
		want := sig.Params[i]
		got := paramKind(arg, regs)
		if got != want {
			if want == ValueTypeKind && got == NodesTypeKind && isSingularQueryExpr(arg) {
				// A singular query supplies its single value where
				// ValueType is expected.
			} else if want == LogicalTypeKind && got == NodesTypeKind {
				// A node-list query supplies an existence test where
				// LogicalType is expected (non-empty nodelist is truthy).
			} else {
				return &pkerrors.TypeError{Message: "function " + fc.Name + "() argument " + itoa(i+1) + " must be " + want.String() + ", got " + got.String()}
			}
		}
		if err := typecheckNestedQueries(arg, strict, regs); err != nil {
			return err
		}
	}
	return nil
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
