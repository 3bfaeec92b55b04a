package jsonpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonpathkit/jsonpathkit/jsonvalue"
)

func mustDecode(t *testing.T, src string) any {
	t.Helper()
	v, err := jsonvalue.Decode([]byte(src))
	require.NoError(t, err)
	return v
}

func TestEvalWildcardOverArray(t *testing.T) {
	doc := mustDecode(t, `[1,2,3]`)
	nodes, err := FindAll("$[*]", doc)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, nodes.Values())
}

func TestEvalSliceBasic(t *testing.T) {
	doc := mustDecode(t, `[0,1,2,3,4,5]`)
	nodes, err := FindAll("$[1:4]", doc)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, nodes.Values())
}

func TestEvalSliceNegativeStep(t *testing.T) {
	doc := mustDecode(t, `[0,1,2,3,4,5]`)
	nodes, err := FindAll("$[::-1]", doc)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(5), int64(4), int64(3), int64(2), int64(1), int64(0)}, nodes.Values())
}

func TestEvalSliceStepZeroMatchesNothing(t *testing.T) {
	doc := mustDecode(t, `[0,1,2,3]`)
	nodes, err := FindAll("$[::0]", doc)
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestEvalNegativeIndex(t *testing.T) {
	doc := mustDecode(t, `[10,20,30]`)
	nodes, err := FindAll("$[-1]", doc)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(30)}, nodes.Values())
}

func TestEvalDescendantSegment(t *testing.T) {
	doc := mustDecode(t, `{"a":{"b":{"a":1}},"a2":2}`)
	nodes, err := FindAll("$..a", doc)
	require.NoError(t, err)
	assert.Len(t, nodes, 2)
}

func TestEvalDescendantDoesNotRecurseIntoStringCodepoints(t *testing.T) {
	doc := mustDecode(t, `{"a":"hello"}`)
	nodes, err := FindAll("$..*", doc)
	require.NoError(t, err)
	// only the string value itself, never per-codepoint "matches"
	assert.Equal(t, []any{"hello"}, nodes.Values())
}

func TestEvalFilterComparison(t *testing.T) {
	doc := mustDecode(t, `[{"price":5},{"price":15}]`)
	nodes, err := FindAll("$[?@.price<10]", doc)
	require.NoError(t, err)
	assert.Len(t, nodes, 1)
}

func TestEvalFilterLogicalAndOr(t *testing.T) {
	doc := mustDecode(t, `[{"a":1,"b":1},{"a":1,"b":2},{"a":2,"b":2}]`)
	nodes, err := FindAll("$[?@.a==1 && @.b==1]", doc)
	require.NoError(t, err)
	assert.Len(t, nodes, 1)

	nodes, err = FindAll("$[?@.a==2 || @.b==1]", doc)
	require.NoError(t, err)
	assert.Len(t, nodes, 2)
}

func TestEvalIndexOutOfRangeYieldsNothing(t *testing.T) {
	doc := mustDecode(t, `[1,2,3]`)
	nodes, err := FindAll("$[10]", doc)
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestEvalNameOnMissingKeyYieldsNothing(t *testing.T) {
	doc := mustDecode(t, `{"a":1}`)
	nodes, err := FindAll("$.b", doc)
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestEvalLargeIndexBoundary(t *testing.T) {
	const maxSafe = int64(1)<<53 - 1
	doc := mustDecode(t, `[1]`)
	_, err := FindAll("$[9007199254740991]", doc)
	assert.NoError(t, err)
	_ = maxSafe
}

func TestEvalLargeIndexRejected(t *testing.T) {
	_, err := Compile("$[9007199254740992]")
	assert.Error(t, err)
}

func TestEvalStrictInvarianceSameResult(t *testing.T) {
	doc := mustDecode(t, `{"store":{"book":[{"price":5},{"price":15}]}}`)
	path := "$.store.book[?@.price<10]"
	loose, err := FindAll(path, doc)
	require.NoError(t, err)
	strict, err := FindAll(path, doc, WithStrict())
	require.NoError(t, err)
	assert.Equal(t, loose.Values(), strict.Values())
}

func TestEvalNameSelectorFoldsUnicodeNormalizationForms(t *testing.T) {
	// "café" keyed with the precomposed é (U+00E9); query it via the
	// decomposed form (e + combining acute accent, U+0301).
	doc := mustDecode(t, "{\"café\":1}")
	nodes, err := FindAll("$['café']", doc)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1)}, nodes.Values())
}

func TestEvalNodeLocation(t *testing.T) {
	doc := mustDecode(t, `{"store":{"book":[{"title":"a"}]}}`)
	nodes, err := FindAll("$.store.book[0].title", doc)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, `$['store']['book'][0]['title']`, nodes[0].Location())
}
