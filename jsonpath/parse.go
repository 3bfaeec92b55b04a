package jsonpath

import (
	"strconv"
	"strings"

	"github.com/jsonpathkit/jsonpathkit/pkerrors"
)

const (
	maxRepresentableIndex int64 = (1 << 53) - 1
	minRepresentableIndex int64 = -maxRepresentableIndex
)

// parser consumes a token stream with one-token lookahead (via peek) and
// builds the Path AST. It never partially constructs an invalid AST: any
// error aborts the parse immediately.
type parser struct {
	lex    *lexer
	strict bool
	regs   *FunctionRegistry

	cur    Token
	peeked *Token
}

func newParser(src string, strict bool, regs *FunctionRegistry) *parser {
	return &parser{lex: newLexer(src, strict), strict: strict, regs: regs}
}

func (p *parser) init() error {
	return p.advance()
}

// advance consumes the current token and loads the next one into p.cur.
func (p *parser) advance() error {
	if p.peeked != nil {
		p.cur = *p.peeked
		p.peeked = nil
		return nil
	}
	t, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

// peek returns the token after p.cur without consuming it.
func (p *parser) peek() (Token, error) {
	if p.peeked == nil {
		t, err := p.lex.Next()
		if err != nil {
			return Token{}, err
		}
		p.peeked = &t
	}
	return *p.peeked, nil
}

func (p *parser) syntaxErr(offset int, msg string) error {
	line, col := lineCol(p.lex.src, offset)
	return &pkerrors.SyntaxError{Source: p.lex.src, Offset: offset, Line: line, Column: col, Lexeme: p.cur.Literal, Message: msg}
}

func (p *parser) expect(k Kind) error {
	if p.cur.Kind != k {
		return p.syntaxErr(p.cur.Offset, "expected "+k.String()+", found "+p.cur.Kind.String())
	}
	return p.advance()
}

// parsePath parses a complete top-level path expression, including
// non-standard compound (| and &) suffixes.
func (p *parser) parsePath(raw string) (*Path, error) {
	if err := p.init(); err != nil {
		return nil, err
	}
	if p.cur.Kind == TokEOF {
		return nil, p.syntaxErr(p.cur.Offset, "empty path expression")
	}
	if p.cur.Kind == TokRoot {
		if err := p.advance(); err != nil {
			return nil, err
		}
	} else if p.strict {
		return nil, p.syntaxErr(p.cur.Offset, "path must start with '$'")
	}

	segs, err := p.parseSegments()
	if err != nil {
		return nil, err
	}

	var compound []CompoundPart
	for p.cur.Kind == TokPipe || p.cur.Kind == TokAmp {
		if p.strict {
			return nil, &pkerrors.NameError{Name: p.cur.Kind.String(), Offset: p.cur.Offset, Strict: true}
		}
		op := CompoundUnion
		if p.cur.Kind == TokAmp {
			op = CompoundIntersect
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Kind == TokRoot {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		sub, err := p.parseSegments()
		if err != nil {
			return nil, err
		}
		compound = append(compound, CompoundPart{Op: op, Segments: sub})
	}

	if p.cur.Kind != TokEOF {
		return nil, p.syntaxErr(p.cur.Offset, "unexpected trailing input")
	}

	path := &Path{raw: raw, strict: p.strict, Segments: segs, Compound: compound}
	if err := typecheckPath(path, p.strict, p.regs); err != nil {
		return nil, err
	}
	return path, nil
}

// parseSegments parses zero or more segments: '..selectors', '.name',
// '.*', or a bracketed selector list, stopping at the first token that
// cannot start a segment.
func (p *parser) parseSegments() ([]Segment, error) {
	var segs []Segment
	for {
		switch p.cur.Kind {
		case TokDescendant:
			off := p.cur.Offset
			if err := p.advance(); err != nil {
				return nil, err
			}
			sels, err := p.parseDescendantSelectors(off)
			if err != nil {
				return nil, err
			}
			segs = append(segs, Segment{Descendant: true, Selectors: sels})
		case TokDot:
			off := p.cur.Offset
			if err := p.advance(); err != nil {
				return nil, err
			}
			sels, err := p.parseDotShorthand(off)
			if err != nil {
				return nil, err
			}
			segs = append(segs, Segment{Selectors: sels})
		case TokLBracket:
			sels, err := p.parseBracketSelectorList()
			if err != nil {
				return nil, err
			}
			segs = append(segs, Segment{Selectors: sels})
		default:
			return segs, nil
		}
	}
}

func (p *parser) parseDotShorthand(dotOffset int) ([]Selector, error) {
	if p.strict && p.cur.Offset > dotOffset+1 {
		return nil, p.syntaxErr(p.cur.Offset, "whitespace after '.' is not permitted in strict mode")
	}
	switch p.cur.Kind {
	case TokWildcard:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return []Selector{{Kind: SelWildcard}}, nil
	case TokKeysShorthand:
		if p.strict {
			return nil, &pkerrors.NameError{Name: "~", Offset: p.cur.Offset, Strict: true}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return []Selector{{Kind: SelKeys}}, nil
	default:
		if name, ok := tokenAsName(p.cur); ok {
			if err := p.advance(); err != nil {
				return nil, err
			}
			return []Selector{{Kind: SelName, Name: name}}, nil
		}
		return nil, p.syntaxErr(p.cur.Offset, "expected a name or '*' after '.'")
	}
}

func (p *parser) parseDescendantSelectors(descOffset int) ([]Selector, error) {
	switch p.cur.Kind {
	case TokWildcard:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return []Selector{{Kind: SelWildcard}}, nil
	case TokLBracket:
		return p.parseBracketSelectorList()
	case TokKeysShorthand:
		if p.strict {
			return nil, &pkerrors.NameError{Name: "~", Offset: p.cur.Offset, Strict: true}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return []Selector{{Kind: SelKeys}}, nil
	default:
		if name, ok := tokenAsName(p.cur); ok {
			if err := p.advance(); err != nil {
				return nil, err
			}
			return []Selector{{Kind: SelName, Name: name}}, nil
		}
		return nil, p.syntaxErr(descOffset, "expected a selector after '..'")
	}
}

func (p *parser) parseBracketSelectorList() ([]Selector, error) {
	if err := p.expect(TokLBracket); err != nil {
		return nil, err
	}
	var sels []Selector
	for {
		sel, err := p.parseSelector()
		if err != nil {
			return nil, err
		}
		sels = append(sels, sel)
		if p.cur.Kind == TokComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(TokRBracket); err != nil {
		return nil, err
	}
	return sels, nil
}

func (p *parser) parseSelector() (Selector, error) {
	switch p.cur.Kind {
	case TokString:
		name := p.cur.Literal
		if err := p.advance(); err != nil {
			return Selector{}, err
		}
		return Selector{Kind: SelName, Name: name}, nil
	case TokWildcard:
		if err := p.advance(); err != nil {
			return Selector{}, err
		}
		return Selector{Kind: SelWildcard}, nil
	case TokFilterStart:
		if err := p.advance(); err != nil {
			return Selector{}, err
		}
		expr, err := p.parseLogicalOr()
		if err != nil {
			return Selector{}, err
		}
		return Selector{Kind: SelFilter, Filter: expr}, nil
	case TokKeysShorthand:
		if p.strict {
			return Selector{}, &pkerrors.NameError{Name: "~", Offset: p.cur.Offset, Strict: true}
		}
		if err := p.advance(); err != nil {
			return Selector{}, err
		}
		if p.cur.Kind == TokFilterStart {
			if err := p.advance(); err != nil {
				return Selector{}, err
			}
			expr, err := p.parseLogicalOr()
			if err != nil {
				return Selector{}, err
			}
			return Selector{Kind: SelKeysFilter, Filter: expr}, nil
		}
		return Selector{Kind: SelKeys}, nil
	case TokInt, TokColon:
		return p.parseIndexOrSlice()
	default:
		if name, ok := tokenAsName(p.cur); ok {
			if p.strict {
				return Selector{}, &pkerrors.NameError{Name: name, Offset: p.cur.Offset, Strict: true}
			}
			if err := p.advance(); err != nil {
				return Selector{}, err
			}
			return Selector{Kind: SelName, Name: name}, nil
		}
		return Selector{}, p.syntaxErr(p.cur.Offset, "unexpected token in selector list")
	}
}

func (p *parser) parseIndexOrSlice() (Selector, error) {
	var first *int64
	if p.cur.Kind == TokInt {
		v, err := p.parseIndexLiteral(p.cur)
		if err != nil {
			return Selector{}, err
		}
		first = &v
		if err := p.advance(); err != nil {
			return Selector{}, err
		}
	}
	if p.cur.Kind != TokColon {
		if first == nil {
			return Selector{}, p.syntaxErr(p.cur.Offset, "expected an integer index")
		}
		return Selector{Kind: SelIndex, Index: *first}, nil
	}
	// slice
	if err := p.advance(); err != nil {
		return Selector{}, err
	}
	slice := SliceArgs{Start: first}
	if p.cur.Kind == TokInt {
		v, err := p.parseIndexLiteral(p.cur)
		if err != nil {
			return Selector{}, err
		}
		slice.Stop = &v
		if err := p.advance(); err != nil {
			return Selector{}, err
		}
	}
	if p.cur.Kind == TokColon {
		if err := p.advance(); err != nil {
			return Selector{}, err
		}
		if p.cur.Kind == TokInt {
			v, err := p.parseIndexLiteral(p.cur)
			if err != nil {
				return Selector{}, err
			}
			slice.Step = &v
			if err := p.advance(); err != nil {
				return Selector{}, err
			}
		}
	}
	return Selector{Kind: SelSlice, Slice: slice}, nil
}

func (p *parser) parseIndexLiteral(tok Token) (int64, error) {
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil || v < minRepresentableIndex || v > maxRepresentableIndex {
		return 0, &pkerrors.IndexError{Literal: tok.Literal, Offset: tok.Offset}
	}
	return v, nil
}

// tokenAsName reports whether tok may be used as a bare member name (in a
// dot-shorthand, descendant-shorthand, or relaxed bracket position),
// treating reserved words as ordinary identifiers in that position.
func tokenAsName(tok Token) (string, bool) {
	switch tok.Kind {
	case TokName, TokIn, TokContains, TokAnd, TokOr, TokNot, TokTrue, TokFalse, TokNull, TokUndefined:
		return tok.Literal, true
	default:
		return "", false
	}
}

// --- Filter expressions (Pratt-style precedence climbing) ---

func (p *parser) parseLogicalOr() (FilterExpr, error) {
	left, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == TokOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		left = &OrExpr{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseLogicalAnd() (FilterExpr, error) {
	left, err := p.parseBasicExpr()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == TokAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseBasicExpr()
		if err != nil {
			return nil, err
		}
		left = &AndExpr{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseBasicExpr() (FilterExpr, error) {
	if p.cur.Kind == TokNot {
		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.parseBasicExpr()
		if err != nil {
			return nil, err
		}
		return &NotExpr{X: x}, nil
	}
	if p.cur.Kind == TokLParen {
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseLogicalOr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokRParen); err != nil {
			return nil, err
		}
		return inner, nil
	}

	left, err := p.parseComparableExpr()
	if err != nil {
		return nil, err
	}

	switch p.cur.Kind {
	case TokEq, TokNe, TokLt, TokLe, TokGt, TokGe:
		op := compareOpFor(p.cur.Kind)
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseComparableExpr()
		if err != nil {
			return nil, err
		}
		return &CompareExpr{Left: left, Right: right, Op: op}, nil
	case TokIn:
		if p.strict {
			return nil, &pkerrors.NameError{Name: "in", Offset: p.cur.Offset, Strict: true}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseComparableExpr()
		if err != nil {
			return nil, err
		}
		return &MembershipExpr{Left: left, Right: right, Op: MemIn}, nil
	case TokContains:
		if p.strict {
			return nil, &pkerrors.NameError{Name: "contains", Offset: p.cur.Offset, Strict: true}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseComparableExpr()
		if err != nil {
			return nil, err
		}
		return &MembershipExpr{Left: left, Right: right, Op: MemContains}, nil
	case TokMatch:
		if p.strict {
			return nil, &pkerrors.NameError{Name: "=~", Offset: p.cur.Offset, Strict: true}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseComparableExpr()
		if err != nil {
			return nil, err
		}
		return &MatchRegexExpr{Left: left, Right: right}, nil
	default:
		return left, nil
	}
}

func compareOpFor(k Kind) CompareOp {
	switch k {
	case TokEq:
		return CmpEq
	case TokNe:
		return CmpNe
	case TokLt:
		return CmpLt
	case TokLe:
		return CmpLe
	case TokGt:
		return CmpGt
	default:
		return CmpGe
	}
}

func (p *parser) parseComparableExpr() (FilterExpr, error) {
	switch p.cur.Kind {
	case TokTrue:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return BoolLiteral{Value: true}, nil
	case TokFalse:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return BoolLiteral{Value: false}, nil
	case TokNull:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return NilLiteral{}, nil
	case TokUndefined:
		if p.strict {
			return nil, &pkerrors.NameError{Name: p.cur.Literal, Offset: p.cur.Offset, Strict: true}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return UndefinedLiteral{}, nil
	case TokInt:
		v, err := strconv.ParseInt(p.cur.Literal, 10, 64)
		if err != nil {
			return nil, &pkerrors.IndexError{Literal: p.cur.Literal, Offset: p.cur.Offset}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return IntLiteral{Value: v}, nil
	case TokFloat:
		v, err := strconv.ParseFloat(p.cur.Literal, 64)
		if err != nil {
			return nil, p.syntaxErr(p.cur.Offset, "invalid float literal")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return FloatLiteral{Value: v}, nil
	case TokString:
		s := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return StringLiteral{Value: s}, nil
	case TokRegex:
		pattern, flags, _ := strings.Cut(p.cur.Literal, "\x00")
		if err := p.advance(); err != nil {
			return nil, err
		}
		return RegexLiteral{Pattern: pattern, Flags: flags}, nil
	case TokLBracket:
		return p.parseListLiteral()
	case TokCurrent:
		if err := p.advance(); err != nil {
			return nil, err
		}
		segs, err := p.parseSegments()
		if err != nil {
			return nil, err
		}
		return &RelativePathExpr{Segments: segs}, nil
	case TokRoot:
		if err := p.advance(); err != nil {
			return nil, err
		}
		segs, err := p.parseSegments()
		if err != nil {
			return nil, err
		}
		return &AbsolutePathExpr{Segments: segs}, nil
	case TokContext:
		if p.strict {
			return nil, &pkerrors.NameError{Name: "#", Offset: p.cur.Offset, Strict: true}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Kind == TokName {
			name := p.cur.Literal
			if err := p.advance(); err != nil {
				return nil, err
			}
			segs, err := p.parseSegments()
			if err != nil {
				return nil, err
			}
			return &FilterContextPathExpr{Name: name, Segments: segs}, nil
		}
		return CurrentKeyExpr{}, nil
	case TokName:
		return p.parseFunctionCall()
	default:
		return nil, p.syntaxErr(p.cur.Offset, "expected a value, query, or function call")
	}
}

func (p *parser) parseListLiteral() (FilterExpr, error) {
	if err := p.expect(TokLBracket); err != nil {
		return nil, err
	}
	var items []FilterExpr
	if p.cur.Kind != TokRBracket {
		for {
			item, err := p.parseComparableExpr()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			if p.cur.Kind == TokComma {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
	}
	if err := p.expect(TokRBracket); err != nil {
		return nil, err
	}
	return ListLiteral{Items: items}, nil
}

func (p *parser) parseFunctionCall() (FilterExpr, error) {
	name := p.cur.Literal
	nameOffset := p.cur.Offset
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.Kind != TokLParen {
		return nil, p.syntaxErr(p.cur.Offset, "unknown identifier "+strconv.Quote(name)+"; expected '('")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var args []FilterExpr
	if p.cur.Kind != TokRParen {
		for {
			arg, err := p.parseLogicalOr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.cur.Kind == TokComma {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
	}
	if err := p.expect(TokRParen); err != nil {
		return nil, err
	}
	if p.regs != nil {
		if _, ok := p.regs.lookup(name); !ok {
			return nil, &pkerrors.NameError{Name: name, Offset: nameOffset}
		}
	}
	return &FunctionCallExpr{Name: name, Args: args}, nil
}
