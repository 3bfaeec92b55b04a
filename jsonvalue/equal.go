package jsonvalue

// undefinedType is the sentinel type for Undefined. Comparing two Undefined
// values with == works because it is a zero-size struct, but callers should
// use Undefined directly rather than constructing their own.
type undefinedType struct{}

// Undefined represents the absence of a value (RFC 9535 "Nothing"), distinct
// from a JSON null. It compares equal only to itself.
var Undefined any = undefinedType{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefinedType)
	return ok
}

// Truthy implements the engine's truthiness rule: Undefined is falsy,
// everything else (including false, 0, "", empty array/object, and null)
// follows host truthiness, which for this engine's logical-filter use is
// simply "is not Undefined".
func Truthy(v any) bool {
	return !IsUndefined(v)
}

// DeepEqual implements RFC 9535 §2.3.5's structural equality: numbers
// compare numerically regardless of int64/float64 representation, mappings
// compare by key-set and per-key equality independent of order, sequences
// compare elementwise in order, and null only equals null. Undefined equals
// only Undefined.
func DeepEqual(a, b any) bool {
	if IsUndefined(a) || IsUndefined(b) {
		return IsUndefined(a) && IsUndefined(b)
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int64, float64:
		bf, ok := asFloat(b)
		if !ok {
			return false
		}
		af, _ := asFloat(a)
		return af == bf
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !DeepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv, ok := b.(*Object)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		eq := true
		av.Range(func(key string, val any) bool {
			other, present := bv.Get(key)
			if !present || !DeepEqual(val, other) {
				eq = false
				return false
			}
			return true
		})
		return eq
	default:
		return false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// TypeName returns the RFC 9535 / jsonpathkit type-name string used by the
// non-standard typeof() and is() filter functions.
func TypeName(v any) string {
	switch v.(type) {
	case undefinedType:
		return "undefined"
	case nil:
		return "null"
	case bool:
		return "boolean"
	case int64, float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case *Object:
		return "object"
	default:
		return "unknown"
	}
}
