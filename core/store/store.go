package store

import (
	"context"
	"encoding/json"
	"errors"
)

// Store is the persistence contract shared by all client-state components.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the raw value persisted under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set persists value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}

// GetJSON reads and unmarshals the value under key. Absent keys and malformed
// payloads both yield the zero value: persisted shape must match the current
// in-memory shape exactly or deserialization silently resets to defaults.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, error) {
	var zero T

	raw, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return zero, nil
		}
		return zero, err
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return zero, nil
	}
	return v, nil
}

// SetJSON marshals v and persists it under key.
func SetJSON[T any](ctx context.Context, s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}
