package pkerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyntaxError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &SyntaxError{Source: "$.a[", Offset: 4, Line: 1, Column: 5, Lexeme: "<eof>", Message: "unexpected end of input"}
		assert.Equal(t, `syntax error at 1:5 (offset 4) near "<eof>": unexpected end of input`, err.Error())
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &SyntaxError{Line: 1, Column: 1}
		assert.Equal(t, "syntax error at 1:1 (offset 0)", err.Error())
	})

	t.Run("Is matches ErrSyntax", func(t *testing.T) {
		err := &SyntaxError{}
		assert.True(t, errors.Is(err, ErrSyntax))
		assert.False(t, errors.Is(err, ErrType))
	})
}

func TestTypeError(t *testing.T) {
	err := &TypeError{Offset: 3, Message: "non-singular query used as comparable"}
	assert.Equal(t, "type error at offset 3: non-singular query used as comparable", err.Error())
	assert.True(t, errors.Is(err, ErrType))
}

func TestIndexError(t *testing.T) {
	err := &IndexError{Literal: "9007199254740992", Offset: 2}
	assert.Contains(t, err.Error(), "9007199254740992")
	assert.True(t, errors.Is(err, ErrIndex))
}

func TestNameError(t *testing.T) {
	strict := &NameError{Name: "~", Offset: 1, Strict: true}
	assert.Contains(t, strict.Error(), "strict mode")
	assert.True(t, errors.Is(strict, ErrName))

	unknown := &NameError{Name: "bogus"}
	assert.Contains(t, unknown.Error(), "unknown function")
}

func TestRecursionError(t *testing.T) {
	err := &RecursionError{Segment: "..", MaxDepth: 100}
	assert.Contains(t, err.Error(), "100")
	assert.True(t, errors.Is(err, ErrRecursion))
}

func TestPointerError(t *testing.T) {
	t.Run("Is matches ErrPointer", func(t *testing.T) {
		err := &PointerError{Pointer: "/a/b", Kind: PointerKindKey, Token: "b"}
		assert.True(t, errors.Is(err, ErrPointer))
		assert.False(t, errors.Is(err, ErrPointerResolution))
	})

	t.Run("Is matches ErrPointerResolution only for resolution kind", func(t *testing.T) {
		err := &PointerError{Pointer: "/missing", Kind: PointerKindResolution}
		assert.True(t, errors.Is(err, ErrPointer))
		assert.True(t, errors.Is(err, ErrPointerResolution))
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := &PointerError{Cause: cause}
		assert.Equal(t, cause, err.Unwrap())
	})
}

func TestPatchError(t *testing.T) {
	t.Run("Is matches ErrPatch", func(t *testing.T) {
		err := &PatchError{Op: "remove", Index: 2}
		assert.True(t, errors.Is(err, ErrPatch))
		assert.False(t, errors.Is(err, ErrPatchTestFailure))
	})

	t.Run("Is matches ErrPatchTestFailure for test kind", func(t *testing.T) {
		err := &PatchError{Op: "test", Index: 0, Kind: PatchKindTestFailure}
		assert.True(t, errors.Is(err, ErrPatchTestFailure))
	})

	t.Run("WrapPatchError preserves test-failure kind", func(t *testing.T) {
		inner := &PatchError{Op: "test", Kind: PatchKindTestFailure}
		wrapped := WrapPatchError("test", 3, "/baz", inner)
		assert.True(t, errors.Is(wrapped, ErrPatchTestFailure))
		assert.Contains(t, wrapped.Error(), "(test:3)")
	})
}

func TestRegexError(t *testing.T) {
	cause := errors.New("missing closing paren")
	err := &RegexError{Pattern: "(abc", Cause: cause}
	assert.Contains(t, err.Error(), "(abc")
	assert.True(t, errors.Is(err, ErrRegex))
	assert.Equal(t, cause, err.Unwrap())
}
