package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store backed by a single JSON document on disk, the durable
// analogue of browser local storage. Every mutation rewrites the whole
// document atomically (temp file + rename), so readers never observe a
// partially written state.
type File struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// NewFile opens (or creates) the store file at path. The parent directory is
// created if missing. A corrupted file is treated as empty rather than
// failing startup.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("store: empty file path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("store: create state directory: %w", err)
	}

	f := &File{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return f, nil
	case err != nil:
		return nil, fmt.Errorf("store: read state file: %w", err)
	}

	if err := json.Unmarshal(raw, &f.data); err != nil {
		f.data = make(map[string]json.RawMessage)
	}
	return f, nil
}

// Get implements Store.
func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	raw, ok := f.data[key]
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

// Set implements Store.
func (f *File) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if !json.Valid(value) {
		// The backing document is one JSON object; values that would corrupt
		// it are rejected. All state components write through store.SetJSON.
		return fmt.Errorf("store: value for %q is not valid JSON", key)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	stored := make(json.RawMessage, len(value))
	copy(stored, value)
	f.data[key] = stored
	return f.flush()
}

// Delete implements Store.
func (f *File) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.data[key]; !ok {
		return nil
	}
	delete(f.data, key)
	return f.flush()
}

// flush writes the whole document atomically. Caller must hold f.mu.
func (f *File) flush() error {
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".state-*.tmp")
	if err != nil {
		return fmt.Errorf("store: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("store: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: close temp file: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: replace state file: %w", err)
	}
	return nil
}
