// Package storage persists the application's keyed records. Each record
// is a whole serialized value (current user, cart, orders) rewritten on
// every mutation; there are no partial updates.
package storage

import (
	"context"
	"errors"
)

// Record keys. A missing key means the empty/absent default.
const (
	KeyUser   = "pizzahub_user"
	KeyCart   = "pizzahub_cart"
	KeyOrders = "pizzahub_orders"
)

// ErrNotFound is returned by Load when the key has never been saved.
var ErrNotFound = errors.New("record not found")

// Records is the repository the stores persist through. Implementations
// must be safe for concurrent use.
type Records interface {
	// Load unmarshals the record at key into dest, or returns ErrNotFound.
	Load(ctx context.Context, key string, dest interface{}) error
	// Save replaces the record at key with the serialized value.
	Save(ctx context.Context, key string, value interface{}) error
}
