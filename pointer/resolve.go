package pointer

import (
	"github.com/jsonpathkit/jsonpathkit/jsonvalue"
	"github.com/jsonpathkit/jsonpathkit/pkerrors"
)

func resolutionErr(p *Pointer, tok Token, msg string) error {
	return &pkerrors.PointerError{Pointer: p.String(), Kind: pkerrors.PointerKindResolution, Token: tok.Raw, Message: msg}
}

func typeErr(p *Pointer, tok Token, msg string) error {
	return &pkerrors.PointerError{Pointer: p.String(), Kind: pkerrors.PointerKindType, Token: tok.Raw, Message: msg}
}

func indexErr(p *Pointer, tok Token, msg string) error {
	return &pkerrors.PointerError{Pointer: p.String(), Kind: pkerrors.PointerKindIndex, Token: tok.Raw, Message: msg}
}

// Resolve walks p against root and returns the value it designates, or a
// *pkerrors.PointerError describing where resolution failed.
func Resolve(p *Pointer, root any) (any, error) {
	cur := root
	for _, tok := range p.Tokens() {
		next, err := step(p, cur, tok)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

func step(p *Pointer, cur any, tok Token) (any, error) {
	switch v := cur.(type) {
	case *jsonvalue.Object:
		if tok.IsDash {
			return nil, typeErr(p, tok, "'-' is not a valid object key")
		}
		val, ok := v.Get(tok.Raw)
		if !ok {
			return nil, resolutionErr(p, tok, "key not found")
		}
		return val, nil
	case []any:
		if tok.IsDash {
			return nil, resolutionErr(p, tok, "'-' does not resolve to an existing element")
		}
		if tok.IsName {
			return nil, typeErr(p, tok, "expected an array index, found a name")
		}
		if tok.Index < 0 || int(tok.Index) >= len(v) {
			return nil, indexErr(p, tok, "index out of bounds")
		}
		return v[tok.Index], nil
	default:
		return nil, typeErr(p, tok, "cannot index into a scalar value")
	}
}

// ResolveParent walks every token of p but the last, returning the parent
// container, the final token, and whether that token currently resolves
// within the parent.
func ResolveParent(p *Pointer, root any) (parent any, last Token, found bool, err error) {
	if p.Len() == 0 {
		return nil, Token{}, false, &pkerrors.PointerError{Pointer: "", Kind: pkerrors.PointerKindResolution, Message: "the root pointer has no parent"}
	}
	parentPtr := p.Parent()
	parent, err = Resolve(parentPtr, root)
	if err != nil {
		return nil, Token{}, false, err
	}
	last, _ = p.Last()
	switch v := parent.(type) {
	case *jsonvalue.Object:
		_, ok := v.Get(last.Raw)
		return parent, last, ok, nil
	case []any:
		if last.IsDash {
			return parent, last, false, nil
		}
		ok := !last.IsName && last.Index >= 0 && int(last.Index) < len(v)
		return parent, last, ok, nil
	default:
		return parent, last, false, typeErr(p, last, "parent is not a container")
	}
}

// Exists reports whether p resolves to a value within root.
func Exists(p *Pointer, root any) bool {
	_, err := Resolve(p, root)
	return err == nil
}

// ResolveDefault is Resolve but returns def instead of an error when p does
// not resolve.
func ResolveDefault(p *Pointer, root any, def any) any {
	v, err := Resolve(p, root)
	if err != nil {
		return def
	}
	return v
}
