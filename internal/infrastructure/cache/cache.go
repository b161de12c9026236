// Package cache provides the recipe-search cache as an explicit dependency
// injected into the host services, instead of a module-level singleton. Keys
// are search queries, values are serialized recipe lists, entries expire
// after a configured TTL.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smart-shopping/internal/infrastructure/config"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Store is the cache abstraction shared by the memory and Redis backends.
// Implementations are safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
	Close() error
}

// New builds the store selected by the configuration. Returns nil when the
// cache is disabled; callers treat a nil store as cache-off.
func New(cfg *config.CacheConfig) (Store, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	switch cfg.Backend {
	case "redis":
		return NewRedisStore(&cfg.Redis)
	case "memory":
		return NewMemoryStore(cfg), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
