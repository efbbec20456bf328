package blobstore

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when a named artifact does not exist.
//
// Implementations must return an error that satisfies
// errors.Is(err, ErrNotFound).
var ErrNotFound = errors.New("blob not found")

// Store is an abstraction for keeping named model artifacts.
// Implementations are safe for concurrent use.
type Store interface {
	// Put writes an artifact atomically, replacing any previous content.
	Put(ctx context.Context, name string, data []byte) error

	// Open opens an artifact for sequential reading and returns its size.
	Open(ctx context.Context, name string) (io.ReadCloser, int64, error)

	// Delete removes an artifact. Deleting a missing artifact is not an
	// error.
	Delete(ctx context.Context, name string) error

	// List returns the artifact names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// ReadAll is a convenience helper that opens an artifact and reads it
// fully.
func ReadAll(ctx context.Context, s Store, name string) ([]byte, error) {
	rc, _, err := s.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
