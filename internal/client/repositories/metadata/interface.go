// Package metadata stores small named blobs in the local database: the
// persisted session record and the per-installation device key.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for absent keys.
	Delete(ctx context.Context, key string) error
	// GetOrCreate returns the stored value or stores and returns gen().
	GetOrCreate(ctx context.Context, key string, gen func() ([]byte, error)) ([]byte, error)
}
