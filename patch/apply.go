package patch

import (
	"github.com/jsonpathkit/jsonpathkit/jsonvalue"
	"github.com/jsonpathkit/jsonpathkit/pkerrors"
	"github.com/jsonpathkit/jsonpathkit/pointer"
)

// Apply runs every operation in ops against root in order, returning the
// resulting (possibly new, if the root itself was replaced) document.
// Object operations mutate their *jsonvalue.Object targets in place;
// array operations that change length produce a new slice which is
// threaded back up to its container. On failure the returned error is a
// *pkerrors.PatchError decorated with the failing operation's name and
// index.
func Apply(ops []Operation, root any) (any, error) {
	cur := root
	for i, op := range ops {
		next, err := applyOne(cur, op)
		if err != nil {
			return nil, pkerrors.WrapPatchError(string(op.Op), i, op.Path, err)
		}
		cur = next
	}
	return cur, nil
}

func applyOne(root any, op Operation) (any, error) {
	switch op.Op {
	case OpAdd:
		p, err := pointer.Parse(op.Path)
		if err != nil {
			return nil, err
		}
		return applyAdd(root, p, op.Value)
	case OpRemove:
		p, err := pointer.Parse(op.Path)
		if err != nil {
			return nil, err
		}
		return applyRemove(root, p)
	case OpReplace:
		p, err := pointer.Parse(op.Path)
		if err != nil {
			return nil, err
		}
		return applyReplace(root, p, op.Value)
	case OpMove:
		from, err := pointer.Parse(op.From)
		if err != nil {
			return nil, err
		}
		to, err := pointer.Parse(op.Path)
		if err != nil {
			return nil, err
		}
		return applyMove(root, from, to)
	case OpCopy:
		from, err := pointer.Parse(op.From)
		if err != nil {
			return nil, err
		}
		to, err := pointer.Parse(op.Path)
		if err != nil {
			return nil, err
		}
		return applyCopy(root, from, to)
	case OpTest:
		p, err := pointer.Parse(op.Path)
		if err != nil {
			return nil, err
		}
		return root, applyTest(root, p, op.Value)
	default:
		return nil, &pkerrors.PatchError{Op: string(op.Op), Kind: pkerrors.PatchKindOperation, Path: op.Path, Cause: errUnknownOp(op.Op)}
	}
}

type unknownOpError string

func (e unknownOpError) Error() string { return "unknown patch operation " + string(e) }
func errUnknownOp(op OpKind) error     { return unknownOpError(op) }

// applyAt walks tokens from root, rebuilding each array it descends
// through (arrays may change length at the target level and Go slices are
// not addressable through a parent map the way *jsonvalue.Object is), and
// calls finalize on the container at the end of tokens.
func applyAt(root any, tokens []pointer.Token, finalize func(parent any) (any, error)) (any, error) {
	if len(tokens) == 0 {
		return finalize(root)
	}
	tok := tokens[0]
	switch v := root.(type) {
	case *jsonvalue.Object:
		child, ok := v.Get(tok.Raw)
		if !ok {
			return nil, &pkerrors.PointerError{Kind: pkerrors.PointerKindResolution, Token: tok.Raw, Message: "key not found"}
		}
		newChild, err := applyAt(child, tokens[1:], finalize)
		if err != nil {
			return nil, err
		}
		v.Set(tok.Raw, newChild)
		return root, nil
	case []any:
		if tok.IsName || tok.IsDash {
			return nil, &pkerrors.PointerError{Kind: pkerrors.PointerKindType, Token: tok.Raw, Message: "expected an array index"}
		}
		idx := int(tok.Index)
		if idx < 0 || idx >= len(v) {
			return nil, &pkerrors.PointerError{Kind: pkerrors.PointerKindIndex, Token: tok.Raw, Message: "index out of bounds"}
		}
		newChild, err := applyAt(v[idx], tokens[1:], finalize)
		if err != nil {
			return nil, err
		}
		v[idx] = newChild
		return root, nil
	default:
		return nil, &pkerrors.PointerError{Kind: pkerrors.PointerKindType, Token: tok.Raw, Message: "cannot descend into a scalar value"}
	}
}

func applyAdd(root any, p *pointer.Pointer, value any) (any, error) {
	if p.Len() == 0 {
		return value, nil
	}
	tokens := p.Tokens()
	last := tokens[len(tokens)-1]
	return applyAt(root, tokens[:len(tokens)-1], func(parent any) (any, error) {
		return finalizeAdd(parent, last, value)
	})
}

func applyRemove(root any, p *pointer.Pointer) (any, error) {
	if p.Len() == 0 {
		return nil, &pkerrors.PointerError{Kind: pkerrors.PointerKindResolution, Message: "cannot remove the document root"}
	}
	tokens := p.Tokens()
	last := tokens[len(tokens)-1]
	return applyAt(root, tokens[:len(tokens)-1], func(parent any) (any, error) {
		return finalizeRemove(parent, last)
	})
}

func applyReplace(root any, p *pointer.Pointer, value any) (any, error) {
	if p.Len() == 0 {
		return value, nil
	}
	tokens := p.Tokens()
	last := tokens[len(tokens)-1]
	return applyAt(root, tokens[:len(tokens)-1], func(parent any) (any, error) {
		return finalizeReplace(parent, last, value)
	})
}

func applyMove(root any, from, to *pointer.Pointer) (any, error) {
	if isSelfOrDescendant(to, from) {
		return nil, &pkerrors.PointerError{Kind: pkerrors.PointerKindType, Message: "cannot move a value into its own descendant"}
	}
	val, err := pointer.Resolve(from, root)
	if err != nil {
		return nil, err
	}
	root, err = applyRemove(root, from)
	if err != nil {
		return nil, err
	}
	return applyAdd(root, to, val)
}

func applyCopy(root any, from, to *pointer.Pointer) (any, error) {
	val, err := pointer.Resolve(from, root)
	if err != nil {
		return nil, err
	}
	return applyAdd(root, to, deepClone(val))
}

func applyTest(root any, p *pointer.Pointer, want any) error {
	got, err := pointer.Resolve(p, root)
	if err != nil {
		return err
	}
	if !jsonvalue.DeepEqual(got, want) {
		return &pkerrors.PatchError{Kind: pkerrors.PatchKindTestFailure, Path: p.String()}
	}
	return nil
}

func finalizeAdd(parent any, last pointer.Token, value any) (any, error) {
	switch v := parent.(type) {
	case *jsonvalue.Object:
		v.Set(last.Raw, value)
		return v, nil
	case []any:
		if last.IsDash {
			return append(v, value), nil
		}
		if last.IsName {
			return nil, &pkerrors.PointerError{Kind: pkerrors.PointerKindType, Token: last.Raw, Message: "expected an array index or '-'"}
		}
		idx := int(last.Index)
		if idx < 0 || idx > len(v) {
			return nil, &pkerrors.PointerError{Kind: pkerrors.PointerKindIndex, Token: last.Raw, Message: "index out of bounds"}
		}
		out := make([]any, 0, len(v)+1)
		out = append(out, v[:idx]...)
		out = append(out, value)
		out = append(out, v[idx:]...)
		return out, nil
	default:
		return nil, &pkerrors.PointerError{Kind: pkerrors.PointerKindType, Token: last.Raw, Message: "parent is not a container"}
	}
}

func finalizeRemove(parent any, last pointer.Token) (any, error) {
	switch v := parent.(type) {
	case *jsonvalue.Object:
		if !v.Has(last.Raw) {
			return nil, &pkerrors.PointerError{Kind: pkerrors.PointerKindResolution, Token: last.Raw, Message: "key not found"}
		}
		v.Delete(last.Raw)
		return v, nil
	case []any:
		if last.IsDash || last.IsName {
			return nil, &pkerrors.PointerError{Kind: pkerrors.PointerKindType, Token: last.Raw, Message: "expected an array index"}
		}
		idx := int(last.Index)
		if idx < 0 || idx >= len(v) {
			return nil, &pkerrors.PointerError{Kind: pkerrors.PointerKindIndex, Token: last.Raw, Message: "index out of bounds"}
		}
		out := make([]any, 0, len(v)-1)
		out = append(out, v[:idx]...)
		out = append(out, v[idx+1:]...)
		return out, nil
	default:
		return nil, &pkerrors.PointerError{Kind: pkerrors.PointerKindType, Token: last.Raw, Message: "parent is not a container"}
	}
}

func finalizeReplace(parent any, last pointer.Token, value any) (any, error) {
	switch v := parent.(type) {
	case *jsonvalue.Object:
		if !v.Has(last.Raw) {
			return nil, &pkerrors.PointerError{Kind: pkerrors.PointerKindResolution, Token: last.Raw, Message: "target does not exist"}
		}
		v.Set(last.Raw, value)
		return v, nil
	case []any:
		if last.IsDash || last.IsName {
			return nil, &pkerrors.PointerError{Kind: pkerrors.PointerKindType, Token: last.Raw, Message: "expected an array index"}
		}
		idx := int(last.Index)
		if idx < 0 || idx >= len(v) {
			return nil, &pkerrors.PointerError{Kind: pkerrors.PointerKindIndex, Token: last.Raw, Message: "index out of bounds"}
		}
		v[idx] = value
		return v, nil
	default:
		return nil, &pkerrors.PointerError{Kind: pkerrors.PointerKindType, Token: last.Raw, Message: "parent is not a container"}
	}
}

func isSelfOrDescendant(candidate, ancestor *pointer.Pointer) bool {
	a := ancestor.Tokens()
	c := candidate.Tokens()
	if len(c) < len(a) {
		return false
	}
	for i, t := range a {
		if c[i].Raw != t.Raw {
			return false
		}
	}
	return true
}

func deepClone(v any) any {
	switch t := v.(type) {
	case *jsonvalue.Object:
		out := jsonvalue.NewObject(t.Len())
		t.Range(func(k string, val any) bool {
			out.Set(k, deepClone(val))
			return true
		})
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deepClone(e)
		}
		return out
	default:
		return v
	}
}
