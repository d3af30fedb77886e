package booking

import (
	"errors"
	"fmt"
)

// ValidationError reports a rejected booking session before any external
// call is attempted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrSoldOut is returned when an event has no open slot of the requested
// vendor type.
var ErrSoldOut = errors.New("no available spots for this event")

// ErrSessionNotFound is returned when a selection session is missing or expired.
var ErrSessionNotFound = errors.New("selection session not found or expired")
