package ops

import "fmt"

// ErrorCode discriminates the taxonomy of failures the engine reports,
// matching the wire-level `code` field exactly.
type ErrorCode string

const (
	SymbolNotFound    ErrorCode = "SYMBOL_NOT_FOUND"
	AmbiguousMatch     ErrorCode = "AMBIGUOUS_MATCH"
	InvalidParams      ErrorCode = "INVALID_PARAMS"
	EditConflict       ErrorCode = "EDIT_CONFLICT"
	SourceHasErrors    ErrorCode = "SOURCE_HAS_ERRORS"
	InvalidResult      ErrorCode = "INVALID_RESULT"
	UnsupportedLanguage ErrorCode = "UNSUPPORTED_LANGUAGE"
)

// Error is an operation-scoped or request-level failure. OpIndex is -1
// for request-level errors (EDIT_CONFLICT carries two indexes of its
// own and is represented separately by edit.ConflictError).
type Error struct {
	OpIndex int
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError constructs an operation-scoped error.
func NewError(opIndex int, code ErrorCode, message string) *Error {
	return &Error{OpIndex: opIndex, Code: code, Message: message}
}
