// Package kv provides named-slot key-value storage backends.
package kv

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/amonks/todolist/internal/validation"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

var (
	// ErrUnknownBackend is returned by Open for an unrecognized backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrInvalidKey is returned for keys that cannot name a slot.
	ErrInvalidKey = errors.New("invalid storage key")

	// ErrClosed is returned when a closed storage is used.
	ErrClosed = errors.New("storage is closed")
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Storage holds whole values under string keys.
type Storage interface {
	// Get returns the value stored under key. The boolean is false when the
	// key has never been set.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases any resources held by the storage.
	Close() error
}

// Backends returns the supported backend names.
func Backends() []string {
	return []string{BackendFile, BackendSQLite, BackendMemory}
}

// Open opens the named backend. path is a directory for the file backend
// and a database file for the sqlite backend; the memory backend ignores it.
func Open(ctx context.Context, backend, path string) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		return NewFileStorage(path)
	case BackendSQLite:
		return OpenSQLite(ctx, path)
	case BackendMemory:
		return NewMemoryStorage(), nil
	default:
		return nil, validation.FormatInvalidValueError(ErrUnknownBackend, backend, Backends())
	}
}

// ValidateKey checks that key can name a slot in every backend.
func ValidateKey(key string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
