package validation

import (
	"errors"
)

// ErrInvalid matches every *Error through errors.Is.
var ErrInvalid = errors.New("validation failed")

// Error is the single validation error kind returned by the modeling API.
// Message is one of the fixed, human-readable strings below and is returned
// verbatim by Error().
type Error struct {
	Field   string // Argument that failed (e.g. "name", "url", "destination")
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is ErrInvalid or an *Error with the same message.
func (e *Error) Is(target error) bool {
	if target == ErrInvalid {
		return true
	}
	var other *Error
	if errors.As(target, &other) {
		return other.Message == e.Message
	}
	return false
}

// New creates a validation error for the given argument.
func New(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

// IsValidation returns true if err is, or wraps, a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// Fixed messages
const (
	MsgDestinationRequired = "The destination of a relationship must be specified."
	MsgNameRequired        = "The name must not be null or empty."
	MsgURLRequired         = "The URL must not be null or empty."
	MsgIntervalInvalid     = "The polling interval must be zero or a positive integer."
	MsgTimeoutInvalid      = "The timeout must be zero or a positive integer."
)

// InvalidURL returns the message used when a URL does not parse as absolute.
func InvalidURL(url string) string {
	return url + " is not a valid URL."
}
