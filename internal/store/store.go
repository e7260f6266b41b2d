package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("store: key not found")

// Store is flat key-value persistence for the client's local caches,
// the moral equivalent of browser local storage. Implementations must
// treat Get/Set/Delete as synchronous, non-blocking calls.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Key derives the storage key for a cache kind scoped to one user.
// The derivation is deterministic so different kinds (and different
// users) never collide.
func Key(kind, userID string) string {
	return fmt.Sprintf("%s_%s", kind, userID)
}
