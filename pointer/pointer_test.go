package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoot(t *testing.T) {
	p, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, "", p.String())
}

func TestParseTokens(t *testing.T) {
	p, err := Parse("/foo/0/bar")
	require.NoError(t, err)
	require.Equal(t, 3, p.Len())
	toks := p.Tokens()
	assert.Equal(t, "foo", toks[0].Raw)
	assert.True(t, toks[0].IsName)
	assert.Equal(t, int64(0), toks[1].Index)
	assert.False(t, toks[1].IsName)
	assert.Equal(t, "bar", toks[2].Raw)
}

func TestParseMustStartWithSlash(t *testing.T) {
	_, err := Parse("foo")
	assert.Error(t, err)
}

func TestEscapeRoundTrip(t *testing.T) {
	p, err := Parse("/a~1b/c~0d")
	require.NoError(t, err)
	toks := p.Tokens()
	assert.Equal(t, "a/b", toks[0].Raw)
	assert.Equal(t, "c~d", toks[1].Raw)
	assert.Equal(t, "/a~1b/c~0d", p.String())
}

func TestLeadingZeroIsNotAnIndex(t *testing.T) {
	p, err := Parse("/01")
	require.NoError(t, err)
	tok := p.Tokens()[0]
	assert.True(t, tok.IsName)
	assert.Equal(t, "01", tok.Raw)
}

func TestDashToken(t *testing.T) {
	p, err := Parse("/items/-")
	require.NoError(t, err)
	tok := p.Tokens()[1]
	assert.True(t, tok.IsDash)
}

func TestParentAndLast(t *testing.T) {
	p, err := Parse("/a/b/c")
	require.NoError(t, err)
	last, ok := p.Last()
	require.True(t, ok)
	assert.Equal(t, "c", last.Raw)

	parent := p.Parent()
	assert.Equal(t, "/a/b", parent.String())

	root := Root()
	_, ok = root.Last()
	assert.False(t, ok)
	assert.Nil(t, root.Parent())
}

func TestJoinAndChild(t *testing.T) {
	p, err := Parse("/a")
	require.NoError(t, err)
	q, err := Parse("/b/c")
	require.NoError(t, err)
	assert.Equal(t, "/a/b/c", p.Join(q).String())
	assert.Equal(t, "/a/b", p.Child(NameToken("b")).String())
}

func TestURIDecode(t *testing.T) {
	p, err := Parse("/a%20b", WithURIDecode())
	require.NoError(t, err)
	assert.Equal(t, "a b", p.Tokens()[0].Raw)
}
