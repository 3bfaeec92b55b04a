// Package pkerrors provides structured error types for jsonpathkit.
//
// Import path: github.com/jsonpathkit/jsonpathkit/pkerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between the error categories raised by the
// lexer, parser, evaluator, pointer, and patch engines and implement
// appropriate recovery strategies.
//
// # Error Types
//
//   - [SyntaxError]: lexer/parser failures — offending token, byte offset, line/column
//   - [TypeError]: well-typedness and runtime operator-type mismatches
//   - [IndexError]: integer literal out of the engine's representable range
//   - [NameError]: non-standard construct used in strict mode, or unknown filter function
//   - [RecursionError]: descendant segment exceeded the configured max depth
//   - [PointerError]: RFC 6901 / Relative JSON Pointer failures, with sub-kinds
//   - [PatchError]: RFC 6902 failures, with a TestFailure sub-kind
//   - [RegexError]: regex compilation failure, only raised when debug mode is enabled
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrSyntax], [ErrType], [ErrIndex], [ErrName], [ErrRecursion]
//   - [ErrPointer], [ErrPointerResolution]
//   - [ErrPatch], [ErrPatchTestFailure]
//   - [ErrRegex]
//
// # Usage Examples
//
//	path, err := jsonpath.Compile(expr)
//	if errors.Is(err, pkerrors.ErrSyntax) {
//	    // offending lexeme, report to the user with location info
//	}
//
//	var perr *pkerrors.PointerError
//	if errors.As(err, &perr) {
//	    fmt.Printf("pointer %s failed: %s\n", perr.Pointer, perr.Kind)
//	}
package pkerrors
