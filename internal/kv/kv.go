// Package kv provides the key-value persistence used for client-side
// state. Values are opaque byte blobs written as whole-value overwrites,
// namespaced by string keys.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("kv: key not found")

// Store defines the key-value persistence interface.
type Store interface {
	// GetItem returns the value stored under key, or ErrNotFound.
	GetItem(ctx context.Context, key string) ([]byte, error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key string, value []byte) error

	// Close releases the underlying resources.
	Close() error
}
