package domain

import "errors"

var (
	// ErrNotFound is returned when a sector, company or symbol is not in the loaded tables
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is the parent of every ValidationError
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError carries a user-facing message for rejected parameters.
// The message is shown verbatim next to the input field, so Error() does not
// prefix it.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match any validation failure
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func newValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
