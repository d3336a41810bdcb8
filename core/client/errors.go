package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNilStore is returned when a Client is created without a store.
	ErrNilStore = errors.New("client: nil store")
	// ErrMissingBaseURL is returned when the configured base URL is empty.
	ErrMissingBaseURL = errors.New("client: missing base URL")
	// ErrSessionExpired wraps refresh failures and the terminal 401 after a
	// successful refresh. Callers route the user back to login on this error.
	ErrSessionExpired = errors.New("client: session expired")
)

// Error is a non-2xx response from the backend.
type Error struct {
	// Status is the HTTP status code.
	Status int
	// Message is the server-provided message, if the body carried one.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("client: request failed with status %d", e.Status)
	}
	return fmt.Sprintf("client: request failed with status %d: %s", e.Status, e.Message)
}

// IsUnauthorized reports whether the response status was 401.
func (e *Error) IsUnauthorized() bool {
	return e.Status == 401
}
