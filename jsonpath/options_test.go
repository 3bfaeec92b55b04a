package jsonpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	assert.False(t, o.Strict)
	assert.Equal(t, DefaultMaxRecursionDepth, o.MaxRecursionDepth)
	assert.Equal(t, DefaultRegexCacheCapacity, o.RegexCacheCapacity)
}

func TestWithMaxRecursionDepthOverrides(t *testing.T) {
	o := defaultOptions()
	WithMaxRecursionDepth(5)(&o)
	assert.Equal(t, 5, o.MaxRecursionDepth)
}

func TestWithFunctionRegistryOverridesResolution(t *testing.T) {
	o := defaultOptions()
	custom := NewFunctionRegistry()
	custom.Register("double", FunctionSig{Params: []ValueKind{ValueTypeKind}, Result: ValueTypeKind}, func(args []FilterResult) FilterResult {
		n, _ := args[0].Value.(int64)
		return valueResult(n * 2)
	})
	WithFunctionRegistry(custom)(&o)
	assert.Same(t, custom, o.resolveRegistry())
}

func TestWithStrictSetsFlag(t *testing.T) {
	o := defaultOptions()
	WithStrict()(&o)
	assert.True(t, o.Strict)
}

func TestCustomFunctionRegistryUsableInQuery(t *testing.T) {
	regs := NewFunctionRegistry()
	regs.Register("double", FunctionSig{Params: []ValueKind{ValueTypeKind}, Result: ValueTypeKind}, func(args []FilterResult) FilterResult {
		n, _ := args[0].Value.(int64)
		return valueResult(n * 2)
	})
	doc := mustDecode(t, `[1,2,3]`)
	nodes, err := FindAll("$[?double(@)==4]", doc, WithFunctionRegistry(regs))
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]any{int64(2)}, nodes.Values())
}
