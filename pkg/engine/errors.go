package engine

import "fmt"

// ErrorCode classifies failures raised by the engine boundary and the
// combinators built on top of it.
type ErrorCode string

const (
	// ErrCompile: the expression text is not valid in the embedded grammar.
	ErrCompile ErrorCode = "compile-error"
	// ErrTypeMismatch: a value of the wrong kind reached a typed position,
	// e.g. a string sort key compared against a number key.
	ErrTypeMismatch ErrorCode = "type-mismatch"
	// ErrPropagated: the expression itself failed for domain reasons
	// unrelated to the combinator driving it.
	ErrPropagated ErrorCode = "evaluation-failed"
	// ErrRecursionLimit: structural recursion exceeded the depth ceiling.
	ErrRecursionLimit ErrorCode = "recursion-limit"
)

// Error is the structured error for compile and evaluation failures.
type Error struct {
	Code    ErrorCode
	Message string
	// Expr is the offending expression text, when known.
	Expr string
	// Position is the character offset inside Expr, -1 when unavailable.
	Position int
	// Index is the failing element index for per-element failures, -1 otherwise.
	Index int
	Err   error
}

// NewError creates an error with no position or index information.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message, Position: -1, Index: -1}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Expr != "" {
		msg += fmt.Sprintf(" in %q", e.Expr)
	}
	if e.Position >= 0 {
		msg += fmt.Sprintf(" at position %d", e.Position)
	}
	if e.Index >= 0 {
		msg += fmt.Sprintf(" (element %d)", e.Index)
	}
	return msg
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithExpr records the offending expression text.
func (e *Error) WithExpr(expr string) *Error {
	e.Expr = expr
	return e
}

// WithPosition records the character offset of the failure.
func (e *Error) WithPosition(pos int) *Error {
	e.Position = pos
	return e
}

// WithIndex records the collection index whose evaluation failed.
func (e *Error) WithIndex(i int) *Error {
	e.Index = i
	return e
}

// WithCause wraps another error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}
