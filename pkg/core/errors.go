package core

import "fmt"

// Error is the single error kind produced by the connection-string lexers
// and parsers. It carries a human-readable message and nothing else; a
// failed parse never yields a partial model alongside it.
type Error struct {
	msg string
}

// NewError creates an Error with the given message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Errorf creates an Error from a format string.
func Errorf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.msg
}

// Common error messages shared by both dialects.
const (
	ErrUnclosedEscape = "unclosed escape literal"
	ErrEmptyKey       = "Key must not be empty"
)
