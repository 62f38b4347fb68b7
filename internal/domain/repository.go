package domain

import (
	"context"
)

// Store is an opaque key-value store for serialized lists.
// This is a PORT - adapters (SQLite, Redis, Memory) will implement it
type Store interface {
	// Load returns the value under key, or ErrKeyNotFound
	Load(ctx context.Context, key string) (string, error)

	// Save replaces the value under key
	Save(ctx context.Context, key, value string) error

	// Close releases any resources
	Close() error
}
