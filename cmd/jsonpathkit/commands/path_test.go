package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestHandlePathSuccess(t *testing.T) {
	doc := writeTempFile(t, "doc.json", `{"store": {"book": [{"price": 8}, {"price": 22}]}}`)
	out := filepath.Join(t.TempDir(), "out.json")

	code, err := HandlePath([]string{"-q", "$.store.book[?(@.price<10)].price", "-f", doc, "-o", out})
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, code)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "[8]", string(data))
}

func TestHandlePathMissingFileFlag(t *testing.T) {
	code, err := HandlePath([]string{"-q", "$.a"})
	assert.Error(t, err)
	assert.Equal(t, ExitUsage, code)
}

func TestHandlePathSyntaxErrorIsDomainExit(t *testing.T) {
	doc := writeTempFile(t, "doc.json", `{}`)
	code, err := HandlePath([]string{"-q", "$[", "-f", doc})
	assert.Error(t, err)
	assert.Equal(t, ExitDomain, code)
}

func TestHandlePathTableOutput(t *testing.T) {
	doc := writeTempFile(t, "doc.json", `{"a": 1, "bb": 2}`)
	out := filepath.Join(t.TempDir(), "out.txt")

	code, err := HandlePath([]string{"-q", "$.*", "-f", doc, "-o", out, "--table"})
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, code)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "$['a']   1\n$['bb']  2", string(data))
}
