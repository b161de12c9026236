package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-shopping/internal/infrastructure/config"
)

func newTestStore(t *testing.T, maxSize int) *MemoryStore {
	t.Helper()
	store := NewMemoryStore(&config.CacheConfig{
		Enabled:         true,
		Backend:         "memory",
		MaxSize:         maxSize,
		TTL:             time.Minute,
		CleanupInterval: time.Hour,
	})
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestMemoryStoreGetSet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t, 10)

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestMemoryStoreExpiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t, 10)

	require.NoError(t, store.Set(ctx, "ephemeral", []byte("v"), 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, err := store.Get(ctx, "ephemeral")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStoreEvictsLeastUsed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t, 2)

	require.NoError(t, store.Set(ctx, "hot", []byte("1"), time.Minute))
	require.NoError(t, store.Set(ctx, "cold", []byte("2"), time.Minute))

	// make "hot" the more recently and frequently used entry
	_, err := store.Get(ctx, "hot")
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "new", []byte("3"), time.Minute))

	_, err = store.Get(ctx, "cold")
	assert.ErrorIs(t, err, ErrMiss)
	_, err = store.Get(ctx, "hot")
	assert.NoError(t, err)
	_, err = store.Get(ctx, "new")
	assert.NoError(t, err)
}

func TestMemoryStoreDefaultTTL(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t, 10)

	// zero TTL falls back to the configured one
	require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))
	_, err := store.Get(ctx, "k")
	assert.NoError(t, err)
}

func TestMemoryStoreStats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t, 10)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))
	_, _ = store.Get(ctx, "k")
	_, _ = store.Get(ctx, "absent")

	stats := store.Stats()
	assert.Equal(t, 1, stats["size"])
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
	assert.InDelta(t, 0.5, stats["hit_ratio"], 1e-9)
}

func TestNewStoreSelection(t *testing.T) {
	t.Parallel()

	store, err := New(&config.CacheConfig{Enabled: false})
	require.NoError(t, err)
	assert.Nil(t, store)

	store, err = New(&config.CacheConfig{
		Enabled:         true,
		Backend:         "memory",
		MaxSize:         10,
		TTL:             time.Minute,
		CleanupInterval: time.Hour,
	})
	require.NoError(t, err)
	require.NotNil(t, store)
	_ = store.Close()

	_, err = New(&config.CacheConfig{Enabled: true, Backend: "memcached"})
	assert.Error(t, err)
}

func TestMemoryStoreFull(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t, 1)

	require.NoError(t, store.Set(ctx, "only", []byte("v"), time.Minute))
	// eviction makes room, a full store never blocks new keys
	require.NoError(t, store.Set(ctx, "next", []byte("v"), time.Minute))

	_, err := store.Get(ctx, "next")
	assert.NoError(t, err)
}
