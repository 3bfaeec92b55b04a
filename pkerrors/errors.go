package pkerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick category checks without type assertions.
var (
	// ErrSyntax indicates a lexer or parser failure.
	ErrSyntax = errors.New("syntax error")

	// ErrType indicates a well-typedness or runtime type mismatch.
	ErrType = errors.New("type error")

	// ErrIndex indicates an integer literal outside the engine's representable range.
	ErrIndex = errors.New("index error")

	// ErrName indicates a non-standard construct used in strict mode, or an
	// unknown filter function name.
	ErrName = errors.New("name error")

	// ErrRecursion indicates a descendant segment exceeded max_recursion_depth.
	ErrRecursion = errors.New("recursion error")

	// ErrPointer indicates a JSON Pointer or Relative JSON Pointer failure.
	ErrPointer = errors.New("pointer error")

	// ErrPointerResolution matches PointerError with Kind == PointerKindResolution.
	ErrPointerResolution = errors.New("pointer resolution error")

	// ErrPatch indicates a JSON Patch operation failure.
	ErrPatch = errors.New("patch error")

	// ErrPatchTestFailure matches PatchError with Kind == PatchKindTestFailure.
	ErrPatchTestFailure = errors.New("patch test failure")

	// ErrRegex indicates a regex compilation failure (only raised in debug mode).
	ErrRegex = errors.New("regex error")
)

// SyntaxError represents a lexer or parser failure.
type SyntaxError struct {
	// Source is the full path expression being parsed.
	Source string
	// Offset is the byte index of the offending lexeme within Source.
	Offset int
	// Line and Column are 1-based, derived from Source and Offset.
	Line, Column int
	// Lexeme is the offending token text, if known.
	Lexeme string
	// Message describes the failure.
	Message string
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("syntax error at %d:%d (offset %d)", e.Line, e.Column, e.Offset)
	if e.Lexeme != "" {
		msg += fmt.Sprintf(" near %q", e.Lexeme)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// TypeError represents a well-typedness check failure at compile time, or a
// runtime operator/type mismatch.
type TypeError struct {
	// Offset is the byte index where the ill-typed construct begins.
	Offset int
	// Message describes the violated typing rule.
	Message string
}

func (e *TypeError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("type error at offset %d: %s", e.Offset, e.Message)
	}
	return "type error: " + e.Message
}

// Is reports whether target matches this error type.
func (e *TypeError) Is(target error) bool { return target == ErrType }

// IndexError represents an integer literal outside [-(2^53-1), 2^53-1].
type IndexError struct {
	// Literal is the offending literal text.
	Literal string
	// Offset is the byte index of the literal.
	Offset int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index error: %q at offset %d is out of the representable range", e.Literal, e.Offset)
}

// Is reports whether target matches this error type.
func (e *IndexError) Is(target error) bool { return target == ErrIndex }

// NameError represents a non-standard construct rejected by strict mode, or a
// reference to an unregistered filter function.
type NameError struct {
	// Name is the offending identifier or construct name.
	Name string
	// Offset is the byte index where the name was encountered.
	Offset int
	// Strict is true when the violation was a strict-mode restriction.
	Strict bool
}

func (e *NameError) Error() string {
	if e.Strict {
		return fmt.Sprintf("name error: %q is not permitted in strict mode (offset %d)", e.Name, e.Offset)
	}
	return fmt.Sprintf("name error: unknown function %q (offset %d)", e.Name, e.Offset)
}

// Is reports whether target matches this error type.
func (e *NameError) Is(target error) bool { return target == ErrName }

// RecursionError represents a descendant segment that exceeded the
// configured maximum recursion depth.
type RecursionError struct {
	// Segment is a string rendering of the triggering descendant segment.
	Segment string
	// MaxDepth is the configured limit that was exceeded.
	MaxDepth int
}

func (e *RecursionError) Error() string {
	return fmt.Sprintf("recursion error: descendant segment %s exceeded max depth %d", e.Segment, e.MaxDepth)
}

// Is reports whether target matches this error type.
func (e *RecursionError) Is(target error) bool { return target == ErrRecursion }

// PointerKind discriminates sub-kinds of PointerError.
type PointerKind uint8

const (
	// PointerKindIndex indicates an array index token was invalid or out of bounds.
	PointerKindIndex PointerKind = iota + 1
	// PointerKindKey indicates a malformed pointer or relative pointer, or a
	// relative pointer that cannot be applied to its base pointer.
	PointerKindKey
	// PointerKindType indicates the pointer traversed through a value of the
	// wrong kind (e.g. an index token against a non-array).
	PointerKindType
	// PointerKindResolution indicates the pointed-to location does not exist.
	PointerKindResolution
)

func (k PointerKind) String() string {
	switch k {
	case PointerKindIndex:
		return "index"
	case PointerKindKey:
		return "key"
	case PointerKindType:
		return "type"
	case PointerKindResolution:
		return "resolution"
	default:
		return "unknown"
	}
}

// PointerError represents a JSON Pointer (RFC 6901) or Relative JSON Pointer
// failure.
type PointerError struct {
	// Pointer is the pointer string (or relative pointer string) that failed.
	Pointer string
	// Kind discriminates why the pointer failed.
	Kind PointerKind
	// Token is the specific reference-token that could not be applied, if any.
	Token string
	// Message provides additional detail.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *PointerError) Error() string {
	msg := fmt.Sprintf("pointer %s error: %q", e.Kind, e.Pointer)
	if e.Token != "" {
		msg += fmt.Sprintf(" (token %q)", e.Token)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PointerError) Unwrap() error { return e.Cause }

// Is reports whether target matches this error type.
func (e *PointerError) Is(target error) bool {
	if target == ErrPointer {
		return true
	}
	if target == ErrPointerResolution && e.Kind == PointerKindResolution {
		return true
	}
	return false
}

// PatchKind discriminates sub-kinds of PatchError.
type PatchKind uint8

const (
	// PatchKindOperation indicates a generic failure applying an operation.
	PatchKindOperation PatchKind = iota + 1
	// PatchKindTestFailure indicates a "test" operation's value did not match.
	PatchKindTestFailure
)

// PatchError represents a JSON Patch (RFC 6902) operation failure, decorated
// with the operation name and index within the patch document.
type PatchError struct {
	// Op is the operation name ("add", "remove", "replace", "move", "copy", "test").
	Op string
	// Index is the zero-based position of the failing operation in the patch.
	Index int
	// Kind discriminates a generic failure from a failed test assertion.
	Kind PatchKind
	// Path is the JSON Pointer targeted by the operation.
	Path string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *PatchError) Error() string {
	msg := fmt.Sprintf("patch error (%s:%d)", e.Op, e.Index)
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PatchError) Unwrap() error { return e.Cause }

// Is reports whether target matches this error type.
func (e *PatchError) Is(target error) bool {
	if target == ErrPatch {
		return true
	}
	if target == ErrPatchTestFailure && e.Kind == PatchKindTestFailure {
		return true
	}
	return false
}

// RegexError represents a regex compilation failure. It is only ever
// returned when debug mode is enabled; otherwise compilation failures are
// cached as permanently non-matching patterns.
type RegexError struct {
	// Pattern is the source pattern that failed to compile.
	Pattern string
	// Cause is the underlying compiler error.
	Cause error
}

func (e *RegexError) Error() string {
	return fmt.Sprintf("regex error: invalid pattern %q: %v", e.Pattern, e.Cause)
}

// Unwrap returns the underlying cause for error chaining.
func (e *RegexError) Unwrap() error { return e.Cause }

// Is reports whether target matches this error type.
func (e *RegexError) Is(target error) bool { return target == ErrRegex }

// WrapPatchError decorates cause with (op:index) context, matching the
// taxonomy the Patch engine re-raises Pointer/Patch failures under.
func WrapPatchError(op string, index int, path string, cause error) error {
	kind := PatchKindOperation
	var perr *PatchError
	if errors.As(cause, &perr) {
		kind = perr.Kind
	}
	return &PatchError{Op: op, Index: index, Kind: kind, Path: path, Cause: cause}
}
