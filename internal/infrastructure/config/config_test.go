package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "smart-shopping", cfg.App.Name)

	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, 1000, cfg.Cache.MaxSize)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)

	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)

	assert.False(t, cfg.Export.Enabled)
	assert.Equal(t, time.Second, cfg.DedupWindow)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")
	t.Setenv("RATE_LIMIT_REQUESTS", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, "redis.internal:6379", cfg.Cache.Redis.Addr)
	assert.Equal(t, 5, cfg.RateLimit.Requests)
}

func TestValidateConfig(t *testing.T) {
	valid := &Config{
		Server: ServerConfig{Port: 8080},
		Cache: CacheConfig{
			Enabled:         true,
			Backend:         "memory",
			MaxSize:         100,
			TTL:             time.Minute,
			CleanupInterval: time.Minute,
		},
	}
	assert.NoError(t, validateConfig(valid))

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = 0 }},
		{name: "bad backend", mutate: func(c *Config) { c.Cache.Backend = "memcached" }},
		{name: "bad max size", mutate: func(c *Config) { c.Cache.MaxSize = 0 }},
		{name: "bad ttl", mutate: func(c *Config) { c.Cache.TTL = 0 }},
		{name: "redis without addr", mutate: func(c *Config) {
			c.Cache.Backend = "redis"
			c.Cache.Redis.Addr = ""
		}},
		{name: "export without endpoint", mutate: func(c *Config) { c.Export.Enabled = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := *valid
			tt.mutate(&cfg)
			assert.Error(t, validateConfig(&cfg))
		})
	}
}

func TestValidateConfigCacheDisabledSkipsCacheChecks(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: 8080},
		Cache:  CacheConfig{Enabled: false, Backend: "bogus"},
	}
	assert.NoError(t, validateConfig(cfg))
}
