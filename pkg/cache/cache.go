package cache

import (
	"context"
	"time"
)

// Cache is the contract for the cache layer. Repositories depend on this
// interface so the backing store (Redis, in-memory) can be swapped in tests.
type Cache interface {
	// Get unmarshals the cached value into dest.
	// found == false means cache miss and dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set stores value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping checks the connection.
	Ping(ctx context.Context) error
}
