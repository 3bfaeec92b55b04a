package mcpserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleQueryReturnsMatches(t *testing.T) {
	doc := `{"store": {"book": [{"price": 8}, {"price": 22}]}}`
	_, out, err := handleQuery(context.Background(), nil, queryInput{
		Document: doc,
		Path:     "$.store.book[?(@.price<10)]",
	})
	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "$['store']['book'][0]", out.Matches[0].Location)
}

func TestHandleQueryInvalidPathReturnsErrorResult(t *testing.T) {
	res, _, err := handleQuery(context.Background(), nil, queryInput{
		Document: `{}`,
		Path:     "$[",
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
}

func TestHandleQueryStrictRejectsExtensions(t *testing.T) {
	res, _, err := handleQuery(context.Background(), nil, queryInput{
		Document: `{"a": 1}`,
		Path:     "$.a | $.a",
		Strict:   true,
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
}
