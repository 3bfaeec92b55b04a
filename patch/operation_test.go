package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpKindValues(t *testing.T) {
	assert.Equal(t, OpKind("add"), OpAdd)
	assert.Equal(t, OpKind("remove"), OpRemove)
	assert.Equal(t, OpKind("replace"), OpReplace)
	assert.Equal(t, OpKind("move"), OpMove)
	assert.Equal(t, OpKind("copy"), OpCopy)
	assert.Equal(t, OpKind("test"), OpTest)
}
