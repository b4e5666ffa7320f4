// Package kv is the persistent key-value store behind taskmaster.
//
// Values are JSON text stored under string keys, the same model as a
// browser's localStorage. Keys are independent of each other: there are no
// transactions across keys and the last write to a key wins.
//
// Several backends implement Store:
//   - File keeps every key in a single JSON object on disk (default)
//   - SQLite keeps keys in a table via sqlx
//   - Redis keeps keys in a Redis database under a prefix
//   - Memory keeps keys in process memory
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrCorrupt is returned when a stored value cannot be parsed.
	ErrCorrupt = errors.New("corrupt stored value")

	// ErrUnknownBackend is returned when opening a backend that doesn't exist.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrClosed is returned when using a store after Close.
	ErrClosed = errors.New("store is closed")
)

// Store is a synchronous string-keyed store of serialized values.
type Store interface {
	// Get returns the value stored under key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

// GetJSON reads and decodes the JSON value stored under key.
// A value that fails to decode is reported as ErrCorrupt.
func GetJSON[T any](ctx context.Context, store Store, key string) (T, bool, error) {
	var value T
	data, ok, err := store.Get(ctx, key)
	if err != nil {
		return value, false, fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		return value, false, nil
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, true, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return value, true, nil
}

// SetJSON encodes value as JSON and stores it under key.
func SetJSON(ctx context.Context, store Store, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
