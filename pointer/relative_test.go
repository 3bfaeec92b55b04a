package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonpathkit/jsonpathkit/jsonvalue"
)

func TestParseRelativeBasic(t *testing.T) {
	rp, err := ParseRelative("2/foo/bar")
	require.NoError(t, err)
	assert.Equal(t, 2, rp.Origin)
	assert.Nil(t, rp.Offset)
	assert.False(t, rp.NameOf)
	require.NotNil(t, rp.Tail)
	assert.Equal(t, "/foo/bar", rp.Tail.String())
}

func TestParseRelativeOffset(t *testing.T) {
	rp, err := ParseRelative("0-1")
	require.NoError(t, err)
	require.NotNil(t, rp.Offset)
	assert.Equal(t, int64(-1), *rp.Offset)
}

func TestParseRelativeNameOf(t *testing.T) {
	rp, err := ParseRelative("1#")
	require.NoError(t, err)
	assert.True(t, rp.NameOf)
}

func TestParseRelativeRejectsLeadingZeroOrigin(t *testing.T) {
	_, err := ParseRelative("01/foo")
	assert.Error(t, err)
}

func TestRelativeApplyPointer(t *testing.T) {
	base, err := Parse("/a/b/2")
	require.NoError(t, err)

	rp, err := ParseRelative("0+1")
	require.NoError(t, err)
	out, err := rp.ApplyPointer(base)
	require.NoError(t, err)
	assert.Equal(t, "/a/b/3", out.String())

	rp2, err := ParseRelative("1/c")
	require.NoError(t, err)
	out2, err := rp2.ApplyPointer(base)
	require.NoError(t, err)
	assert.Equal(t, "/a/b/c", out2.String())
}

func TestRelativeResolveNameOf(t *testing.T) {
	obj := jsonvalue.NewObject(1)
	obj.Set("bar", []any{10, 20, 30})
	doc := jsonvalue.NewObject(1)
	doc.Set("foo", obj)

	base, err := Parse("/foo/bar/1")
	require.NoError(t, err)
	rp, err := ParseRelative("0#")
	require.NoError(t, err)
	name, err := rp.Resolve(base, doc)
	require.NoError(t, err)
	assert.Equal(t, int64(1), name)

	rp2, err := ParseRelative("1#")
	require.NoError(t, err)
	name2, err := rp2.Resolve(base, doc)
	require.NoError(t, err)
	assert.Equal(t, "bar", name2)
}

func TestRelativeOffsetRejectsNameTarget(t *testing.T) {
	base, err := Parse("/foo/bar")
	require.NoError(t, err)
	rp, err := ParseRelative("0+1")
	require.NoError(t, err)
	_, err = rp.apply(base)
	assert.Error(t, err)
}

func TestRelativeOriginExceedsDepth(t *testing.T) {
	base, err := Parse("/a")
	require.NoError(t, err)
	rp, err := ParseRelative("5")
	require.NoError(t, err)
	_, err = rp.apply(base)
	assert.Error(t, err)
}
