// Package pointer implements RFC 6901 JSON Pointer and its Relative JSON
// Pointer companion, operating over the jsonvalue document model shared
// with the jsonpath and patch packages.
package pointer

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/jsonpathkit/jsonpathkit/pkerrors"
)

// Token is one reference-token of a pointer: either an object key (IsName)
// or an array index, with "-" recognized as the Patch "append" marker.
type Token struct {
	Raw    string
	Index  int64
	IsName bool
	IsDash bool
}

// NameToken builds an object-key reference token.
func NameToken(name string) Token { return Token{Raw: name, IsName: true} }

// IndexToken builds an array-index reference token.
func IndexToken(i int64) Token { return Token{Raw: strconv.FormatInt(i, 10), Index: i} }

// DashToken builds the "-" append-position marker token.
func DashToken() Token { return Token{Raw: "-", IsDash: true} }

// Pointer is a parsed JSON Pointer: a sequence of reference tokens applied
// left to right from the document root.
type Pointer struct {
	tokens []Token
}

// Root is the empty pointer, referencing the whole document.
func Root() *Pointer { return &Pointer{} }

// FromParts builds a Pointer directly from tokens, without parsing.
func FromParts(tokens ...Token) *Pointer {
	return &Pointer{tokens: append([]Token(nil), tokens...)}
}

type parseConfig struct {
	uriDecode bool
}

// Option configures Parse.
type Option func(*parseConfig)

// WithURIDecode percent-decodes s before splitting it into tokens, per the
// optional URI-fragment form of a JSON Pointer.
func WithURIDecode() Option { return func(c *parseConfig) { c.uriDecode = true } }

// Parse parses s ("" for the document root, or "/tok(/tok)*") into a
// Pointer, unescaping "~1" to "/" and "~0" to "~" in each token.
func Parse(s string, opts ...Option) (*Pointer, error) {
	cfg := &parseConfig{}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.uriDecode {
		decoded, err := url.QueryUnescape(s)
		if err != nil {
			return nil, &pkerrors.PointerError{Pointer: s, Kind: pkerrors.PointerKindKey, Message: "invalid percent-encoding", Cause: err}
		}
		s = decoded
	}
	if s == "" {
		return &Pointer{}, nil
	}
	if s[0] != '/' {
		return nil, &pkerrors.PointerError{Pointer: s, Kind: pkerrors.PointerKindKey, Message: "pointer must start with '/' or be empty"}
	}
	parts := strings.Split(s[1:], "/")
	tokens := make([]Token, len(parts))
	for i, raw := range parts {
		tokens[i] = parseToken(unescapeToken(raw))
	}
	return &Pointer{tokens: tokens}, nil
}

func parseToken(raw string) Token {
	if raw == "-" {
		return DashToken()
	}
	if idx, ok := indexValue(raw); ok {
		return Token{Raw: raw, Index: idx}
	}
	return NameToken(raw)
}

// indexValue reports whether raw is a valid array-index token: "0" or a
// digit string with no leading zero.
func indexValue(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}
	if raw == "0" {
		return 0, true
	}
	if raw[0] < '1' || raw[0] > '9' {
		return 0, false
	}
	for i := 1; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func unescapeToken(s string) string {
	if !strings.Contains(s, "~") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '~' && i+1 < len(s) {
			switch s[i+1] {
			case '0':
				b.WriteByte('~')
				i++
				continue
			case '1':
				b.WriteByte('/')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func escapeToken(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}

// Tokens returns the pointer's reference tokens in order. The returned
// slice must not be mutated.
func (p *Pointer) Tokens() []Token {
	if p == nil {
		return nil
	}
	return p.tokens
}

// Len reports the number of reference tokens (0 for the root pointer).
func (p *Pointer) Len() int {
	if p == nil {
		return 0
	}
	return len(p.tokens)
}

// String renders the pointer back to its RFC 6901 textual form.
func (p *Pointer) String() string {
	if p == nil || len(p.tokens) == 0 {
		return ""
	}
	var b strings.Builder
	for _, t := range p.tokens {
		b.WriteByte('/')
		b.WriteString(escapeToken(t.Raw))
	}
	return b.String()
}

// Parent returns the pointer with its last token removed, or nil if p is
// already the root pointer.
func (p *Pointer) Parent() *Pointer {
	if p == nil || len(p.tokens) == 0 {
		return nil
	}
	return &Pointer{tokens: p.tokens[:len(p.tokens)-1]}
}

// Last returns the pointer's final token and true, or the zero Token and
// false if p is the root pointer.
func (p *Pointer) Last() (Token, bool) {
	if p == nil || len(p.tokens) == 0 {
		return Token{}, false
	}
	return p.tokens[len(p.tokens)-1], true
}

// Join returns a new pointer with other's tokens appended after p's.
func (p *Pointer) Join(other *Pointer) *Pointer {
	combined := append(append([]Token(nil), p.Tokens()...), other.Tokens()...)
	return &Pointer{tokens: combined}
}

// Child returns a new pointer with one additional trailing token.
func (p *Pointer) Child(tok Token) *Pointer {
	combined := append(append([]Token(nil), p.Tokens()...), tok)
	return &Pointer{tokens: combined}
}
