package cache

import (
	"context"
	"time"
)

// Store is a key-value cache with per-key expiration. Implementations treat
// backend failures as cache misses so callers never fail on cache errors.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, expiration time.Duration)
	Delete(ctx context.Context, key string)
}
