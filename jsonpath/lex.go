package jsonpath

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jsonpathkit/jsonpathkit/pkerrors"
)

// lexer is a byte-position scanner over a path expression. It produces one
// Token per Next call; it holds no lookahead of its own — that is the
// parser's responsibility via a one-slot pushback buffer.
type lexer struct {
	src    string
	pos    int
	strict bool
}

func newLexer(src string, strict bool) *lexer {
	return &lexer{src: src, strict: strict}
}

func (l *lexer) errAt(offset int, msg string) error {
	line, col := lineCol(l.src, offset)
	return &pkerrors.SyntaxError{Source: l.src, Offset: offset, Line: line, Column: col, Message: msg}
}

func lineCol(src string, offset int) (line, col int) {
	line = 1
	col = 1
	for i := 0; i < offset && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func (l *lexer) peekByte() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) byteAt(off int) byte {
	if l.pos+off >= len(l.src) {
		return 0
	}
	return l.src[l.pos+off]
}

// skipWhitespace skips blanks. Non-strict mode is the only caller that
// treats this as always-legal; strict-mode legality is checked by the
// parser at the specific positions where whitespace is non-standard.
func (l *lexer) skipWhitespace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

// Next scans and returns the next token, advancing pos.
func (l *lexer) Next() (Token, error) {
	l.skipWhitespace()
	start := l.pos
	if l.pos >= len(l.src) {
		return Token{Kind: TokEOF, Offset: start}, nil
	}

	c := l.src[l.pos]
	switch {
	case c == '$':
		l.pos++
		return Token{Kind: TokRoot, Literal: "$", Offset: start}, nil
	case c == '@':
		l.pos++
		return Token{Kind: TokCurrent, Literal: "@", Offset: start}, nil
	case c == '#':
		l.pos++
		return Token{Kind: TokContext, Literal: "#", Offset: start}, nil
	case c == '~':
		l.pos++
		return Token{Kind: TokKeysShorthand, Literal: "~", Offset: start}, nil
	case c == '.':
		if l.byteAt(1) == '.' {
			l.pos += 2
			return Token{Kind: TokDescendant, Literal: "..", Offset: start}, nil
		}
		l.pos++
		return Token{Kind: TokDot, Literal: ".", Offset: start}, nil
	case c == '*':
		l.pos++
		return Token{Kind: TokWildcard, Literal: "*", Offset: start}, nil
	case c == '[':
		l.pos++
		return Token{Kind: TokLBracket, Literal: "[", Offset: start}, nil
	case c == '?':
		l.pos++
		return Token{Kind: TokFilterStart, Literal: "?", Offset: start}, nil
	case c == ']':
		l.pos++
		return Token{Kind: TokRBracket, Literal: "]", Offset: start}, nil
	case c == '(':
		l.pos++
		return Token{Kind: TokLParen, Literal: "(", Offset: start}, nil
	case c == ')':
		l.pos++
		return Token{Kind: TokRParen, Literal: ")", Offset: start}, nil
	case c == ',':
		l.pos++
		return Token{Kind: TokComma, Literal: ",", Offset: start}, nil
	case c == ':':
		l.pos++
		return Token{Kind: TokColon, Literal: ":", Offset: start}, nil
	case c == '!':
		if l.byteAt(1) == '=' {
			l.pos += 2
			return Token{Kind: TokNe, Literal: "!=", Offset: start}, nil
		}
		l.pos++
		return Token{Kind: TokNot, Literal: "!", Offset: start}, nil
	case c == '=':
		if l.byteAt(1) == '=' {
			l.pos += 2
			return Token{Kind: TokEq, Literal: "==", Offset: start}, nil
		}
		if l.byteAt(1) == '~' {
			l.pos += 2
			return Token{Kind: TokMatch, Literal: "=~", Offset: start}, nil
		}
		return Token{}, l.errAt(start, "unexpected '='")
	case c == '<':
		if l.byteAt(1) == '=' {
			l.pos += 2
			return Token{Kind: TokLe, Literal: "<=", Offset: start}, nil
		}
		if l.byteAt(1) == '>' {
			l.pos += 2
			return Token{Kind: TokNe, Literal: "<>", Offset: start}, nil
		}
		l.pos++
		return Token{Kind: TokLt, Literal: "<", Offset: start}, nil
	case c == '>':
		if l.byteAt(1) == '=' {
			l.pos += 2
			return Token{Kind: TokGe, Literal: ">=", Offset: start}, nil
		}
		l.pos++
		return Token{Kind: TokGt, Literal: ">", Offset: start}, nil
	case c == '&':
		if l.byteAt(1) == '&' {
			l.pos += 2
			return Token{Kind: TokAnd, Literal: "&&", Offset: start}, nil
		}
		l.pos++
		return Token{Kind: TokAmp, Literal: "&", Offset: start}, nil
	case c == '|':
		if l.byteAt(1) == '|' {
			l.pos += 2
			return Token{Kind: TokOr, Literal: "||", Offset: start}, nil
		}
		l.pos++
		return Token{Kind: TokPipe, Literal: "|", Offset: start}, nil
	case c == '\'' || c == '"':
		return l.scanString(c)
	case c == '/':
		return l.scanRegex()
	case c == '-' || isDigit(c):
		return l.scanNumber()
	case isIdentStart(c):
		return l.scanIdentOrKeyword()
	default:
		r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
		return Token{}, l.errAt(start, "illegal character "+strconv.QuoteRune(r))
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '-'
}

func (l *lexer) scanIdentOrKeyword() (Token, error) {
	start := l.pos
	for l.pos < len(l.src) && isIdentCont(l.src[l.pos]) {
		l.pos++
	}
	word := l.src[start:l.pos]
	switch word {
	case "true":
		return Token{Kind: TokTrue, Literal: word, Offset: start}, nil
	case "false":
		return Token{Kind: TokFalse, Literal: word, Offset: start}, nil
	case "null", "nil", "none":
		return Token{Kind: TokNull, Literal: word, Offset: start}, nil
	case "undefined", "missing":
		return Token{Kind: TokUndefined, Literal: word, Offset: start}, nil
	case "and":
		return Token{Kind: TokAnd, Literal: word, Offset: start}, nil
	case "or":
		return Token{Kind: TokOr, Literal: word, Offset: start}, nil
	case "not":
		return Token{Kind: TokNot, Literal: word, Offset: start}, nil
	case "in":
		return Token{Kind: TokIn, Literal: word, Offset: start}, nil
	case "contains":
		return Token{Kind: TokContains, Literal: word, Offset: start}, nil
	default:
		return Token{Kind: TokName, Literal: word, Offset: start}, nil
	}
}

func (l *lexer) scanNumber() (Token, error) {
	start := l.pos
	if l.peekByte() == '-' {
		l.pos++
	}
	if l.pos >= len(l.src) || !isDigit(l.src[l.pos]) {
		return Token{}, l.errAt(start, "expected digit")
	}
	digitsStart := l.pos
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	if l.src[digitsStart] == '0' && l.pos-digitsStart > 1 {
		return Token{}, l.errAt(start, "leading zeros are not permitted in integer literals")
	}
	isFloat := false
	if l.peekByte() == '.' && isDigit(l.byteAt(1)) {
		isFloat = true
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	if c := l.peekByte(); c == 'e' || c == 'E' {
		save := l.pos
		l.pos++
		if c := l.peekByte(); c == '+' || c == '-' {
			l.pos++
		}
		if l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			isFloat = true
			for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
				l.pos++
			}
		} else {
			l.pos = save
		}
	}
	lit := l.src[start:l.pos]
	if isFloat {
		return Token{Kind: TokFloat, Literal: lit, Offset: start}, nil
	}
	return Token{Kind: TokInt, Literal: lit, Offset: start}, nil
}

func (l *lexer) scanString(quote byte) (Token, error) {
	start := l.pos
	l.pos++ // consume opening quote
	var sb strings.Builder
	for {
		if l.pos >= len(l.src) {
			return Token{}, l.errAt(start, "unterminated string literal")
		}
		c := l.src[l.pos]
		if c == quote {
			l.pos++
			break
		}
		if c == '\\' {
			decoded, n, err := decodeEscape(l.src[l.pos:], quote)
			if err != nil {
				return Token{}, l.errAt(l.pos, err.Error())
			}
			sb.WriteString(decoded)
			l.pos += n
			continue
		}
		if c <= 0x1f {
			return Token{}, l.errAt(l.pos, "unescaped control character in string literal")
		}
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		sb.WriteRune(r)
		l.pos += size
	}
	return Token{Kind: TokString, Literal: sb.String(), Offset: start}, nil
}

// scanRegex scans a /pattern/flags literal. '/' inside the pattern must be
// escaped as '\/'.
func (l *lexer) scanRegex() (Token, error) {
	start := l.pos
	l.pos++ // consume leading '/'
	var sb strings.Builder
	for {
		if l.pos >= len(l.src) {
			return Token{}, l.errAt(start, "unterminated regex literal")
		}
		c := l.src[l.pos]
		if c == '/' {
			l.pos++
			break
		}
		if c == '\\' && l.byteAt(1) == '/' {
			sb.WriteByte('/')
			l.pos += 2
			continue
		}
		sb.WriteByte(c)
		l.pos++
	}
	flagsStart := l.pos
	for l.pos < len(l.src) && isIdentStart(l.src[l.pos]) {
		l.pos++
	}
	flags := l.src[flagsStart:l.pos]
	return Token{Kind: TokRegex, Literal: sb.String() + "\x00" + flags, Offset: start}, nil
}
