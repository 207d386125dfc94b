package ports

import "context"

// Storage is the durable key/value store surviving process restarts,
// the client-side equivalent of browser local storage. Implementations
// must return domain.ErrKeyNotFound for missing keys.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
