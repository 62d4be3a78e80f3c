// Package metadata stores small named values (tokens, the cached profile) in
// the local SQLite state database.
package metadata

import (
	"context"
)

// Repository is a byte-valued key/value table.
//
// Get returns (nil, nil) when the key does not exist. An empty value also
// reads back as nil, so callers treat a zero-length result as absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
