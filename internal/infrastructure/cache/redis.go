package cache

import (
	"context"
	"fmt"
	"time"

	"smart-shopping/internal/infrastructure/config"
	"smart-shopping/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisStore backs the cache with a Redis instance so entries survive
// restarts and are shared between replicas.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(cfg *config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("redis cache initialized", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))

	return &RedisStore{client: client}, nil
}

// Get returns the cached value, or ErrMiss when the key is absent.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("failed to get cache entry: %w", err)
	}
	return data, nil
}

// Set stores a value with the given TTL.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache entry: %w", err)
	}
	return nil
}

// Ping checks the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
