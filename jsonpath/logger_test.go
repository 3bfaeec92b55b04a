package jsonpath

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	warnings []string
}

func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(msg string, _ ...any) {
	r.warnings = append(r.warnings, msg)
}
func (r *recordingLogger) Error(string, ...any) {}

func TestRegexCacheWarnsOnCompileFailureViaLogger(t *testing.T) {
	log := &recordingLogger{}
	cache := newRegexCache(10, false, false, log)
	ok := cache.fullMatch("anything", "(unterminated")
	assert.False(t, ok)
	assert.Len(t, log.warnings, 1)
}

func TestRegexCacheDebugModeSurfacesErrorInstead(t *testing.T) {
	cache := newRegexCache(10, false, true, NopLogger{})
	_, err := cache.compile("F:(unterminated", "(unterminated")
	assert.Error(t, err)
}

func TestDescendantSegmentWarnsNearRecursionLimit(t *testing.T) {
	doc := mustDecode(t, `{"a":{"b":{"c":{"d":1}}}}`)
	log := &recordingLogger{}
	_, err := FindAll("$..d", doc, WithMaxRecursionDepth(4), WithLogger(log))
	assert.NoError(t, err)
	assert.NotEmpty(t, log.warnings)
}

func TestNewSlogAdapterForwardsToWrappedLogger(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, nil)))
	adapter.Warn("test warning", "k", "v")
	assert.Contains(t, buf.String(), "test warning")
}
