package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// ReadCollection reads and decodes the collection stored under key.
// An absent key decodes to an empty slice, never an error.
func ReadCollection[T any](ctx context.Context, s Store, key string) ([]T, error) {
	data, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decoding %q: %v", ErrSerialization, key, err)
	}
	return records, nil
}

// WriteCollection encodes records and fully replaces the collection
// stored under key.
func WriteCollection[T any](ctx context.Context, s Store, key string, records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: encoding %q: %v", ErrSerialization, key, err)
	}
	return s.Set(ctx, key, data)
}

// ReadString reads a scalar string value, such as the session pointer.
// An absent key reads as the empty string.
func ReadString(ctx context.Context, s Store, key string) (string, error) {
	data, err := s.Get(ctx, key)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteString fully replaces a scalar string value under key.
func WriteString(ctx context.Context, s Store, key, value string) error {
	return s.Set(ctx, key, []byte(value))
}
