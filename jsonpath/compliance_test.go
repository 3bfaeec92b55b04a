package jsonpath_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonpathkit/jsonpathkit/internal/compliance"
	"github.com/jsonpathkit/jsonpathkit/internal/fixtures"
	"github.com/jsonpathkit/jsonpathkit/jsonvalue"
	"github.com/jsonpathkit/jsonpathkit/patch"
	"github.com/jsonpathkit/jsonpathkit/pkerrors"
	"github.com/jsonpathkit/jsonpathkit/pointer"
)

const storeDocument = fixtures.StoreDocument

// mustObject decodes src and asserts it produced a mapping, for use in
// building expected filter-match values (the engine represents matched
// objects as *jsonvalue.Object, not a plain Go map).
func mustObject(t *testing.T, src string) *jsonvalue.Object {
	t.Helper()
	v, err := jsonvalue.Decode([]byte(src))
	require.NoError(t, err)
	obj, ok := v.(*jsonvalue.Object)
	require.True(t, ok, "expected an object, got %T", v)
	return obj
}

// TestComplianceScenarios runs the literal end-to-end scenarios enumerated
// as concrete examples: author list via a wildcard, a descendant filter on
// price, and the length()/count() filter functions.
func TestComplianceScenarios(t *testing.T) {
	scenarios := []compliance.Scenario{
		{
			Name:     "store book authors",
			Path:     "$.store.book[*].author",
			Document: storeDocument,
			Want:     []any{"Nigel Rees", "Evelyn Waugh", "Herman Melville", "J. R. R. Tolkien"},
		},
		{
			Name:     "cheap books under 10",
			Path:     "$..book[?(@.price<10)]",
			Document: storeDocument,
			Want: []any{
				mustObject(t, `{"category": "reference", "author": "Nigel Rees", "title": "Sayings of the Century", "price": 8.95}`),
				mustObject(t, `{"category": "fiction", "author": "Herman Melville", "title": "Moby Dick", "isbn": "0-553-21311-3", "price": 8.99}`),
			},
		},
		{
			Name:     "length filter function",
			Path:     "$[?length(@.a)>=2]",
			Document: `[{"a":"ab"},{"a":"d"}]`,
			Want:     []any{mustObject(t, `{"a": "ab"}`)},
		},
		{
			Name:     "count filter function",
			Path:     "$[?count(@..*)>2]",
			Document: `[{"a":[1,2,3]},{"a":[1],"d":"f"},{"a":1,"d":"f"}]`,
			Want: []any{
				mustObject(t, `{"a":[1,2,3]}`),
				mustObject(t, `{"a":[1],"d":"f"}`),
			},
		},
	}

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			assert.NoError(t, compliance.Run(s))
		})
	}
}

// TestCompliancePointerEscapes covers the two Pointer escape scenarios:
// "~0" for literal tilde, "~1" for literal slash.
func TestCompliancePointerEscapes(t *testing.T) {
	doc, err := jsonvalue.Decode([]byte(`{"m~n":8}`))
	require.NoError(t, err)
	p, err := pointer.Parse("/m~0n")
	require.NoError(t, err)
	v, err := pointer.Resolve(p, doc)
	require.NoError(t, err)
	assert.Equal(t, int64(8), v)

	doc, err = jsonvalue.Decode([]byte(`{"a/b":1}`))
	require.NoError(t, err)
	p, err = pointer.Parse("/a~1b")
	require.NoError(t, err)
	v, err = pointer.Resolve(p, doc)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}

// TestCompliancePatchScenarios covers the add-via-dash append and the
// test-operation failure scenario.
func TestCompliancePatchScenarios(t *testing.T) {
	doc, err := jsonvalue.Decode([]byte(`{"foo":[]}`))
	require.NoError(t, err)
	result, err := patch.Apply([]patch.Operation{
		{Op: patch.OpAdd, Path: "/foo/-", Value: int64(1)},
	}, doc)
	require.NoError(t, err)
	want, err := jsonvalue.Decode([]byte(`{"foo":[1]}`))
	require.NoError(t, err)
	assert.True(t, jsonvalue.DeepEqual(result, want))

	doc, err = jsonvalue.Decode([]byte(`{"baz":"qux"}`))
	require.NoError(t, err)
	_, err = patch.Apply([]patch.Operation{
		{Op: patch.OpTest, Path: "/baz", Value: "bar"},
	}, doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkerrors.ErrPatchTestFailure))
}
