package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonpathkit/jsonpathkit/jsonvalue"
)

func TestBuilderAssemblesOperations(t *testing.T) {
	ops := NewBuilder().
		Add("/a", 1).
		Remove("/b").
		Replace("/c", 2).
		Move("/d", "/e").
		Copy("/f", "/g").
		Test("/h", 3).
		Build()

	require.Len(t, ops, 6)
	assert.Equal(t, Operation{Op: OpAdd, Path: "/a", Value: 1}, ops[0])
	assert.Equal(t, Operation{Op: OpRemove, Path: "/b"}, ops[1])
	assert.Equal(t, Operation{Op: OpReplace, Path: "/c", Value: 2}, ops[2])
	assert.Equal(t, Operation{Op: OpMove, From: "/d", Path: "/e"}, ops[3])
	assert.Equal(t, Operation{Op: OpCopy, From: "/f", Path: "/g"}, ops[4])
	assert.Equal(t, Operation{Op: OpTest, Path: "/h", Value: 3}, ops[5])
}

func TestBuilderApply(t *testing.T) {
	out, err := NewBuilder().Add("/x", "y").Apply(jsonvalue.NewObject(0))
	require.NoError(t, err)
	_ = out
}
