package jsonpath

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) []Token {
	t.Helper()
	l := newLexer(src, false)
	var toks []Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == TokEOF {
			return toks
		}
	}
}

func TestLexSimpleDotPath(t *testing.T) {
	toks := lexAll(t, "$.store.book")
	kinds := make([]Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []Kind{TokRoot, TokDot, TokName, TokDot, TokName, TokEOF}, kinds)
}

func TestLexDescendantAndWildcard(t *testing.T) {
	toks := lexAll(t, "$..book[*]")
	kinds := make([]Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []Kind{TokRoot, TokDescendant, TokName, TokLBracket, TokWildcard, TokRBracket, TokEOF}, kinds)
}

func TestLexComparisonOperators(t *testing.T) {
	cases := map[string]Kind{
		"==": TokEq, "!=": TokNe, "<>": TokNe, "<": TokLt, "<=": TokLe,
		">": TokGt, ">=": TokGe, "=~": TokMatch,
	}
	for lit, want := range cases {
		l := newLexer(lit, false)
		tok, err := l.Next()
		require.NoError(t, err)
		assert.Equal(t, want, tok.Kind, "lexing %q", lit)
	}
}

func TestLexKeywords(t *testing.T) {
	cases := map[string]Kind{
		"true": TokTrue, "false": TokFalse, "null": TokNull, "nil": TokNull,
		"none": TokNull, "undefined": TokUndefined, "missing": TokUndefined,
		"and": TokAnd, "or": TokOr, "not": TokNot, "in": TokIn, "contains": TokContains,
	}
	for lit, want := range cases {
		l := newLexer(lit, false)
		tok, err := l.Next()
		require.NoError(t, err)
		assert.Equal(t, want, tok.Kind, "lexing %q", lit)
	}
}

func TestLexStringEscapes(t *testing.T) {
	l := newLexer(`'it\'s'`, false)
	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, TokString, tok.Kind)
	assert.Equal(t, "it's", tok.Literal)
}

func TestLexStringUnterminated(t *testing.T) {
	l := newLexer(`'abc`, false)
	_, err := l.Next()
	assert.Error(t, err)
}

func TestLexNumberLeadingZeroRejected(t *testing.T) {
	l := newLexer("007", false)
	_, err := l.Next()
	assert.Error(t, err)
}

func TestLexNumberFloatAndExponent(t *testing.T) {
	l := newLexer("1.5e10", false)
	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, TokFloat, tok.Kind)
	assert.Equal(t, "1.5e10", tok.Literal)
}

func TestLexNegativeInteger(t *testing.T) {
	l := newLexer("-42", false)
	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, TokInt, tok.Kind)
	assert.Equal(t, "-42", tok.Literal)
}

func TestLexRegexLiteralWithFlags(t *testing.T) {
	l := newLexer(`/^a.c$/i`, false)
	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, TokRegex, tok.Kind)
	parts := strings.SplitN(tok.Literal, "\x00", 2)
	assert.Equal(t, "^a.c$", parts[0])
	assert.Equal(t, "i", parts[1])
}

func TestLexIllegalCharacter(t *testing.T) {
	l := newLexer("%", false)
	_, err := l.Next()
	assert.Error(t, err)
}

func TestLexOffsetsTrackSourcePosition(t *testing.T) {
	toks := lexAll(t, "$.a")
	require.Len(t, toks, 4)
	assert.Equal(t, 0, toks[0].Offset)
	assert.Equal(t, 1, toks[1].Offset)
	assert.Equal(t, 2, toks[2].Offset)
}
