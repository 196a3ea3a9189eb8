package models

import "errors"

// Sentinels for by-id lookups that found no row. Handlers map these to 404.
var (
	ErrEventNotFound   = errors.New("event not found")
	ErrBookingNotFound = errors.New("booking not found")
)

// ValidationError marks input the caller got wrong. Handlers map it to 400
// and return the message as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// ServiceError is a sanitized failure of an underlying operation. The cause
// is kept for logging but never serialized to the caller.
type ServiceError struct {
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func NewServiceError(message string, cause error) *ServiceError {
	return &ServiceError{Message: message, Cause: cause}
}

// IsValidation reports whether err is a ValidationError anywhere in its chain.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
