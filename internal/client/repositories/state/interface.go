// Package state persists small pieces of client state as key/value pairs in
// the local database. The session store is its only writer today; the session
// record is the single entity whitelisted for durable storage.
package state

import "context"

type Repository interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
