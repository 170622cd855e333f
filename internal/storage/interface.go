package storage

import (
	"context"
	"errors"
)

// Storage-level errors. Backends wrap these so callers can classify
// failures without knowing which medium is underneath.
var (
	// ErrUnavailable indicates the persistence medium could not be reached
	ErrUnavailable = errors.New("storage unavailable")

	// ErrSerialization indicates a record could not be encoded or decoded
	ErrSerialization = errors.New("record serialization failed")
)

// Store is a durable mapping from a fixed string key to an opaque
// serialized value. Writes fully replace the value under a key; callers
// own the read-modify-write cycle.
type Store interface {
	// Get returns the value under key, or (nil, nil) if the key was
	// never written.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set fully replaces the value under key.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
