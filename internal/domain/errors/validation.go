package errors

import (
	"net/http"

	"restaurant/internal/errors"
)

// ValidationErrorCode is the business code reported for every broken domain rule.
const ValidationErrorCode = "VALIDATION_FAILED"

// ValidationError reports a broken invariant of a domain object.
// The message names the violated rule and is safe to show to clients.
type ValidationError struct {
	field   string
	message string
}

// NewValidationError creates a validation error for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		field:   field,
		message: message,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.message
}

// Field returns the name of the offending field.
func (e *ValidationError) Field() string {
	return e.field
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ValidationErrorCode
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return e.message
}

// Details returns the offending field name.
func (e *ValidationError) Details() string {
	return e.field
}

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	_, ok := errors.Find[*ValidationError](err)

	return ok
}

// AsValidationError returns the first ValidationError in err's chain.
func AsValidationError(err error) (*ValidationError, bool) {
	return errors.Find[*ValidationError](err)
}
