package errors

import (
	"habit/internal/domain/validation"
)

// ValidationError carries every failed rule of a single operation.
type ValidationError struct {
	*BaseError
	failures []validation.Failure
}

// NewValidationError builds a VALIDATION_FAILURE error. details usually names the operation.
func NewValidationError(details string, failures []validation.Failure) *ValidationError {
	return &ValidationError{
		BaseError: ErrValidationFailed.WithDetails(details),
		failures:  failures,
	}
}

// Failures returns the collected failures in rule order.
func (e *ValidationError) Failures() []validation.Failure {
	return e.failures
}

// Unwrap lets errors.Is(err, ErrValidationFailed) match.
func (e *ValidationError) Unwrap() error {
	return e.BaseError
}
