package pointer

import (
	"strconv"

	"github.com/jsonpathkit/jsonpathkit/pkerrors"
)

// RelativePointer is a parsed Relative JSON Pointer:
// origin([+-]offset)?(# | pointer).
type RelativePointer struct {
	Origin int
	Offset *int64
	NameOf bool
	Tail   *Pointer
}

// ParseRelative parses s into a RelativePointer.
func ParseRelative(s string) (*RelativePointer, error) {
	if s == "" {
		return nil, relErr(s, "empty relative pointer")
	}
	i := 0
	if s[i] == '0' {
		i++
	} else if s[i] >= '1' && s[i] <= '9' {
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	} else {
		return nil, relErr(s, "expected an unsigned integer origin")
	}
	origin, err := strconv.Atoi(s[:i])
	if err != nil {
		return nil, relErr(s, "invalid origin")
	}

	rp := &RelativePointer{Origin: origin}

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		start := i
		i++
		if i >= len(s) || s[i] < '0' || s[i] > '9' {
			return nil, relErr(s, "expected digits after offset sign")
		}
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		offset, err := strconv.ParseInt(s[start:i], 10, 64)
		if err != nil {
			return nil, relErr(s, "invalid offset")
		}
		rp.Offset = &offset
	}

	rest := s[i:]
	if rest == "#" {
		rp.NameOf = true
		return rp, nil
	}
	tail, err := Parse(rest)
	if err != nil {
		return nil, err
	}
	rp.Tail = tail
	return rp, nil
}

func relErr(s, msg string) error {
	return &pkerrors.PointerError{Pointer: s, Kind: pkerrors.PointerKindKey, Message: msg}
}

// apply pops Origin tokens from base and applies the integer-index Offset,
// if any, to the resulting tail token.
func (rp *RelativePointer) apply(base *Pointer) (*Pointer, error) {
	tokens := base.Tokens()
	if rp.Origin > len(tokens) {
		return nil, relErr(base.String(), "origin exceeds the base pointer's depth")
	}
	kept := append([]Token(nil), tokens[:len(tokens)-rp.Origin]...)
	newBase := &Pointer{tokens: kept}

	if rp.Offset != nil {
		last, ok := newBase.Last()
		if !ok || last.IsName {
			return nil, relErr(base.String(), "an offset requires an integer index at the target location")
		}
		if *rp.Offset == 0 {
			return nil, relErr(base.String(), "an offset must be nonzero")
		}
		newIdx := last.Index + *rp.Offset
		if newIdx < 0 {
			return nil, relErr(base.String(), "offset produced a negative index")
		}
		adjusted := append([]Token(nil), newBase.tokens[:len(newBase.tokens)-1]...)
		adjusted = append(adjusted, IndexToken(newIdx))
		newBase = &Pointer{tokens: adjusted}
	}
	return newBase, nil
}

// ApplyPointer resolves the relative pointer against base and returns the
// resulting absolute Pointer. It returns an error for a name-of ("#")
// relative pointer, which has no pointer form.
func (rp *RelativePointer) ApplyPointer(base *Pointer) (*Pointer, error) {
	newBase, err := rp.apply(base)
	if err != nil {
		return nil, err
	}
	if rp.NameOf {
		return nil, relErr(base.String(), "a name-of relative pointer has no pointer form")
	}
	return newBase.Join(rp.Tail), nil
}

// Resolve resolves the relative pointer against base within root: for a
// name-of ("#") relative pointer it returns the target's key (string) or
// index (int64); otherwise it resolves the resulting absolute pointer.
func (rp *RelativePointer) Resolve(base *Pointer, root any) (any, error) {
	newBase, err := rp.apply(base)
	if err != nil {
		return nil, err
	}
	if rp.NameOf {
		last, ok := newBase.Last()
		if !ok {
			return nil, relErr(base.String(), "the document root has no name or index")
		}
		if last.IsName {
			return last.Raw, nil
		}
		return last.Index, nil
	}
	return Resolve(newBase.Join(rp.Tail), root)
}
