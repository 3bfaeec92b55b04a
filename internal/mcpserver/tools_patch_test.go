package mcpserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonpathkit/jsonpathkit/jsonvalue"
)

func TestHandlePatchApplyAddAndReplace(t *testing.T) {
	_, out, err := handlePatchApply(context.Background(), nil, patchApplyInput{
		Document: `{"name": "widget"}`,
		Operations: []patchOperationInput{
			{Op: "add", Path: "/color", Value: "red"},
			{Op: "replace", Path: "/name", Value: "gadget"},
		},
	})
	require.NoError(t, err)
	obj, ok := out.Result.(*jsonvalue.Object)
	require.True(t, ok)
	v, _ := obj.Get("name")
	assert.Equal(t, "gadget", v)
	c, _ := obj.Get("color")
	assert.Equal(t, "red", c)
}

func TestHandlePatchApplyTestFailureReturnsErrorResult(t *testing.T) {
	res, _, err := handlePatchApply(context.Background(), nil, patchApplyInput{
		Document: `{"name": "widget"}`,
		Operations: []patchOperationInput{
			{Op: "test", Path: "/name", Value: "nope"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
}
