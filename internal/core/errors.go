package core

import (
	"errors"
	"fmt"
)

// ErrReviewTooShort is wrapped by ValidationError for reviews under
// MinReviewLength.
var ErrReviewTooShort = errors.New("review text is too short")

// ValidationError is a local, pre-flight rejection. It never reaches the
// network.
type ValidationError struct {
	Field string
	Min   int
	Got   int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be at least %d characters long (got %d)", e.Field, e.Min, e.Got)
}

func (e *ValidationError) Unwrap() error {
	return ErrReviewTooShort
}

// APIError is returned when the server answered with a structured error
// message. The message is meant to be shown to the user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// TransportError covers network failures and responses without a usable
// error payload. StatusCode is zero when no response was received.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s: unexpected status %d: %v", e.Op, e.StatusCode, e.Err)
		}
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
