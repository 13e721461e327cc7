package types

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a get or delete of an id that does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed input: a bad id, an unknown owning-model
// kind, or a reference to a record that does not exist.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ConflictError reports a duplicate creation caught during validation.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// NewConflictError builds a ConflictError from a format string.
func NewConflictError(format string, args ...any) *ConflictError {
	return &ConflictError{Reason: fmt.Sprintf(format, args...)}
}
