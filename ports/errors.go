package ports

import (
	"errors"
	"fmt"
)

// Validation errors for port descriptions.
var (
	// ErrMissingSymbol is returned when a port declares no lv2:symbol.
	ErrMissingSymbol = errors.New("port has no symbol")

	// ErrMissingIndex is returned when a port declares no lv2:index.
	ErrMissingIndex = errors.New("port has no index")

	// ErrInvalidIndex is returned when lv2:index is not an integer.
	ErrInvalidIndex = errors.New("port index is not an integer")

	// ErrDuplicateIndex is returned when two ports share an index.
	ErrDuplicateIndex = errors.New("duplicate port index")
)

// Error ties a validation failure to the subject that caused it.
type Error struct {
	Subject string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Subject, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
