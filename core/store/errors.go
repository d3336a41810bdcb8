package store

import "errors"

var (
	// ErrNotFound is returned when a key has no persisted value.
	ErrNotFound = errors.New("store: key not found")
	// ErrEmptyKey is returned when an operation is attempted with an empty key.
	ErrEmptyKey = errors.New("store: empty key")
)
