// Package store provides persisted key-value preference storage.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key is not found in the store.
var ErrNotFound = errors.New("key not found")

// Interface defines the operations of a preference store.
// Both Store and Cached satisfy it.
type Interface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
