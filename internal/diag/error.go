package diag

import (
	"fmt"

	"jsparse/internal/source"
)

// Error is the parse failure surfaced across package boundaries: the first
// diagnostic observed, promoted to a Go error. Lexical failures are wrapped
// into the same shape at the offset where the parser observed them, so the
// caller always sees one error type carrying position and message.
type Error struct {
	Diag Diagnostic
}

// NewError wraps a diagnostic as an error.
func NewError(code Code, span source.Span, msg string) *Error {
	return &Error{Diag: Diagnostic{
		Severity: SevError,
		Code:     code,
		Message:  msg,
		Primary:  span,
	}}
}

// Offset returns the byte offset of the triggering position.
func (e *Error) Offset() uint32 { return e.Diag.Primary.Start }

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d: %s", e.Diag.Code.ID(), e.Diag.Primary.Start, e.Diag.Message)
}
