package query

import (
	"errors"
	"fmt"
)

// Error kinds. Every *Error unwraps to exactly one of these.
var (
	// ErrSyntax covers grammar, token, keyword and evaluation type errors
	ErrSyntax = errors.New("INVALID_SYNTAX")

	// ErrColumn is returned when a referenced column is not in the table header
	ErrColumn = errors.New("INVALID_COLUMN")

	// ErrTable is returned when a record does not fit the table header
	ErrTable = errors.New("INVALID_TABLE")
)

// Error is a query failure of a known kind
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s]: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// SyntaxError returns an ErrSyntax error with a formatted message
func SyntaxError(format string, args ...interface{}) error {
	return &Error{Kind: ErrSyntax, Message: fmt.Sprintf(format, args...)}
}

// ColumnError returns an ErrColumn error with a formatted message
func ColumnError(format string, args ...interface{}) error {
	return &Error{Kind: ErrColumn, Message: fmt.Sprintf(format, args...)}
}

// TableError returns an ErrTable error with a formatted message
func TableError(format string, args ...interface{}) error {
	return &Error{Kind: ErrTable, Message: fmt.Sprintf(format, args...)}
}
