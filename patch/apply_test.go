package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonpathkit/jsonpathkit/jsonvalue"
)

func newDoc() *jsonvalue.Object {
	doc := jsonvalue.NewObject(2)
	doc.Set("name", "widget")
	doc.Set("tags", []any{"a", "b", "c"})
	return doc
}

func TestApplyAddToObject(t *testing.T) {
	doc := newDoc()
	out, err := Apply([]Operation{{Op: OpAdd, Path: "/color", Value: "red"}}, doc)
	require.NoError(t, err)
	obj := out.(*jsonvalue.Object)
	v, ok := obj.Get("color")
	require.True(t, ok)
	assert.Equal(t, "red", v)
}

func TestApplyAddArrayInsertAndAppend(t *testing.T) {
	doc := newDoc()
	out, err := Apply([]Operation{
		{Op: OpAdd, Path: "/tags/1", Value: "x"},
		{Op: OpAdd, Path: "/tags/-", Value: "z"},
	}, doc)
	require.NoError(t, err)
	obj := out.(*jsonvalue.Object)
	tags, _ := obj.Get("tags")
	assert.Equal(t, []any{"a", "x", "b", "c", "z"}, tags)
}

func TestApplyRemoveFromObject(t *testing.T) {
	doc := newDoc()
	out, err := Apply([]Operation{{Op: OpRemove, Path: "/name"}}, doc)
	require.NoError(t, err)
	obj := out.(*jsonvalue.Object)
	assert.False(t, obj.Has("name"))
}

func TestApplyRemoveFromArray(t *testing.T) {
	doc := newDoc()
	out, err := Apply([]Operation{{Op: OpRemove, Path: "/tags/0"}}, doc)
	require.NoError(t, err)
	obj := out.(*jsonvalue.Object)
	tags, _ := obj.Get("tags")
	assert.Equal(t, []any{"b", "c"}, tags)
}

func TestApplyReplace(t *testing.T) {
	doc := newDoc()
	out, err := Apply([]Operation{{Op: OpReplace, Path: "/name", Value: "gadget"}}, doc)
	require.NoError(t, err)
	obj := out.(*jsonvalue.Object)
	v, _ := obj.Get("name")
	assert.Equal(t, "gadget", v)
}

func TestApplyReplaceMissingFails(t *testing.T) {
	doc := newDoc()
	_, err := Apply([]Operation{{Op: OpReplace, Path: "/nope", Value: 1}}, doc)
	assert.Error(t, err)
}

func TestApplyMove(t *testing.T) {
	doc := newDoc()
	out, err := Apply([]Operation{{Op: OpMove, From: "/name", Path: "/title"}}, doc)
	require.NoError(t, err)
	obj := out.(*jsonvalue.Object)
	assert.False(t, obj.Has("name"))
	v, ok := obj.Get("title")
	require.True(t, ok)
	assert.Equal(t, "widget", v)
}

func TestApplyMoveRejectsIntoOwnDescendant(t *testing.T) {
	inner := jsonvalue.NewObject(0)
	doc := jsonvalue.NewObject(1)
	doc.Set("a", inner)
	_, err := Apply([]Operation{{Op: OpMove, From: "/a", Path: "/a/b"}}, doc)
	assert.Error(t, err)
}

func TestApplyCopyIsIndependent(t *testing.T) {
	doc := newDoc()
	out, err := Apply([]Operation{{Op: OpCopy, From: "/tags", Path: "/tags2"}}, doc)
	require.NoError(t, err)
	obj := out.(*jsonvalue.Object)
	tags2, _ := obj.Get("tags2")
	s := tags2.([]any)
	s[0] = "mutated"
	original, _ := obj.Get("tags")
	assert.Equal(t, "a", original.([]any)[0])
}

func TestApplyTestSuccessAndFailure(t *testing.T) {
	doc := newDoc()
	_, err := Apply([]Operation{{Op: OpTest, Path: "/name", Value: "widget"}}, doc)
	require.NoError(t, err)

	_, err = Apply([]Operation{{Op: OpTest, Path: "/name", Value: "nope"}}, doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test:0")
}

func TestApplyWholeDocumentReplace(t *testing.T) {
	doc := newDoc()
	out, err := Apply([]Operation{{Op: OpReplace, Path: "", Value: 42}}, doc)
	require.NoError(t, err)
	assert.Equal(t, 42, out)
}

func TestApplyErrorIsDecoratedWithOpAndIndex(t *testing.T) {
	doc := newDoc()
	_, err := Apply([]Operation{
		{Op: OpReplace, Path: "/name", Value: "ok"},
		{Op: OpRemove, Path: "/missing"},
	}, doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remove:1")
}
