package jsonvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeepEqualMappingOrderIndependent(t *testing.T) {
	a := NewObject(0)
	a.Set("x", int64(1))
	a.Set("y", int64(2))

	b := NewObject(0)
	b.Set("y", int64(2))
	b.Set("x", int64(1))

	assert.True(t, DeepEqual(a, b))
}

func TestDeepEqualSequenceOrderDependent(t *testing.T) {
	assert.True(t, DeepEqual([]any{int64(1), int64(2)}, []any{int64(1), int64(2)}))
	assert.False(t, DeepEqual([]any{int64(1), int64(2)}, []any{int64(2), int64(1)}))
}

func TestDeepEqualNumericWidening(t *testing.T) {
	assert.True(t, DeepEqual(int64(1), float64(1)))
}

func TestDeepEqualUndefined(t *testing.T) {
	assert.True(t, DeepEqual(Undefined, Undefined))
	assert.False(t, DeepEqual(Undefined, nil))
	assert.False(t, DeepEqual(nil, Undefined))
}

func TestDeepEqualNullOnlyEqualsNull(t *testing.T) {
	assert.True(t, DeepEqual(nil, nil))
	assert.False(t, DeepEqual(nil, false))
	assert.False(t, DeepEqual(nil, ""))
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(Undefined))
	assert.True(t, Truthy(nil))
	assert.True(t, Truthy(false))
	assert.True(t, Truthy(""))
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "undefined", TypeName(Undefined))
	assert.Equal(t, "null", TypeName(nil))
	assert.Equal(t, "boolean", TypeName(true))
	assert.Equal(t, "number", TypeName(int64(1)))
	assert.Equal(t, "number", TypeName(float64(1.5)))
	assert.Equal(t, "string", TypeName("s"))
	assert.Equal(t, "array", TypeName([]any{}))
	assert.Equal(t, "object", TypeName(NewObject(0)))
}
