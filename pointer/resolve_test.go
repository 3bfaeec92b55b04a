package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonpathkit/jsonpathkit/jsonvalue"
)

func sampleDoc() *jsonvalue.Object {
	foo := jsonvalue.NewObject(1)
	foo.Set("bar", []any{1, 2, 3})
	doc := jsonvalue.NewObject(1)
	doc.Set("foo", foo)
	return doc
}

func TestResolveNested(t *testing.T) {
	p, err := Parse("/foo/bar/1")
	require.NoError(t, err)
	v, err := Resolve(p, sampleDoc())
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestResolveRootIsWholeDocument(t *testing.T) {
	doc := sampleDoc()
	v, err := Resolve(Root(), doc)
	require.NoError(t, err)
	assert.Same(t, doc, v)
}

func TestResolveMissingKey(t *testing.T) {
	p, err := Parse("/foo/missing")
	require.NoError(t, err)
	_, err = Resolve(p, sampleDoc())
	assert.Error(t, err)
}

func TestResolveIndexOutOfBounds(t *testing.T) {
	p, err := Parse("/foo/bar/9")
	require.NoError(t, err)
	_, err = Resolve(p, sampleDoc())
	assert.Error(t, err)
}

func TestResolveParentForAppend(t *testing.T) {
	p, err := Parse("/foo/bar/-")
	require.NoError(t, err)
	parent, last, found, err := ResolveParent(p, sampleDoc())
	require.NoError(t, err)
	assert.NotNil(t, parent)
	assert.True(t, last.IsDash)
	assert.False(t, found)
}

func TestExists(t *testing.T) {
	doc := sampleDoc()
	p, _ := Parse("/foo/bar/0")
	assert.True(t, Exists(p, doc))
	missing, _ := Parse("/foo/nope")
	assert.False(t, Exists(missing, doc))
}

func TestResolveDefault(t *testing.T) {
	doc := sampleDoc()
	missing, _ := Parse("/foo/nope")
	assert.Equal(t, "fallback", ResolveDefault(missing, doc, "fallback"))
}
