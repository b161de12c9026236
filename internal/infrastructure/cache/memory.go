package cache

import (
	"context"
	"sync"
	"time"

	"smart-shopping/internal/infrastructure/config"
	"smart-shopping/internal/pkg/common"

	"go.uber.org/zap"
)

// MemoryStore is an in-process TTL cache with LRU eviction, used when no
// Redis instance is available.
type MemoryStore struct {
	config *config.CacheConfig
	mu     sync.RWMutex
	store  map[string]memoryEntry
	stats  memoryStats
	done   chan struct{}
	once   sync.Once
}

type memoryEntry struct {
	value       []byte
	expiresAt   time.Time
	createdAt   time.Time
	lastAccess  time.Time
	accessCount int
}

type memoryStats struct {
	hits      int64
	misses    int64
	evictions int64
}

// NewMemoryStore creates the store and starts its expiry sweeper.
func NewMemoryStore(cfg *config.CacheConfig) *MemoryStore {
	m := &MemoryStore{
		config: cfg,
		store:  make(map[string]memoryEntry),
		done:   make(chan struct{}),
	}

	go m.startCleanup()

	common.LogInfo("memory cache initialized",
		zap.Int("max_size", cfg.MaxSize),
		zap.Duration("ttl", cfg.TTL),
		zap.Duration("cleanup_interval", cfg.CleanupInterval),
	)

	return m
}

// Get returns the cached value, or ErrMiss when absent or expired.
func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.store[key]
	if !exists {
		m.stats.misses++
		return nil, ErrMiss
	}

	if time.Now().After(entry.expiresAt) {
		delete(m.store, key)
		m.stats.evictions++
		m.stats.misses++
		return nil, ErrMiss
	}

	entry.lastAccess = time.Now()
	entry.accessCount++
	m.store[key] = entry
	m.stats.hits++
	return entry.value, nil
}

// Set stores a value. When the store is full, expired entries are swept
// first, then the least-used entry is evicted.
func (m *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.store) >= m.config.MaxSize {
		if evicted := m.cleanupLocked(); evicted > 0 {
			common.LogInfo("cache cleanup run", zap.Int("evicted", evicted))
		}
		if len(m.store) >= m.config.MaxSize {
			m.evictLRULocked()
		}
		if len(m.store) >= m.config.MaxSize {
			common.LogWarn("cache full", zap.Int("size", len(m.store)))
			return common.ErrCacheFull
		}
	}

	if ttl <= 0 {
		ttl = m.config.TTL
	}
	now := time.Now()
	m.store[key] = memoryEntry{
		value:      value,
		expiresAt:  now.Add(ttl),
		createdAt:  now,
		lastAccess: now,
	}
	return nil
}

// Ping always succeeds for the in-process store.
func (m *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Close stops the sweeper and drops all entries.
func (m *MemoryStore) Close() error {
	m.once.Do(func() { close(m.done) })

	m.mu.Lock()
	defer m.mu.Unlock()
	m.store = make(map[string]memoryEntry)

	common.LogInfo("memory cache closed",
		zap.Int64("hits", m.stats.hits),
		zap.Int64("misses", m.stats.misses),
		zap.Int64("evictions", m.stats.evictions),
	)
	return nil
}

// Stats reports usage counters for the health endpoint.
func (m *MemoryStore) Stats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := m.stats.hits + m.stats.misses
	hitRatio := 0.0
	if total > 0 {
		hitRatio = float64(m.stats.hits) / float64(total)
	}
	return map[string]interface{}{
		"size":      len(m.store),
		"max_size":  m.config.MaxSize,
		"hits":      m.stats.hits,
		"misses":    m.stats.misses,
		"evictions": m.stats.evictions,
		"hit_ratio": hitRatio,
	}
}

func (m *MemoryStore) startCleanup() {
	ticker := time.NewTicker(m.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.mu.Lock()
			m.cleanupLocked()
			m.mu.Unlock()
		case <-m.done:
			return
		}
	}
}

func (m *MemoryStore) cleanupLocked() int {
	now := time.Now()
	count := 0
	for key, entry := range m.store {
		if now.After(entry.expiresAt) {
			delete(m.store, key)
			count++
			m.stats.evictions++
		}
	}
	return count
}

func (m *MemoryStore) evictLRULocked() {
	var oldestKey string
	var oldestAccess time.Time
	var lowestAccessCount int

	for key, entry := range m.store {
		if oldestKey == "" ||
			entry.accessCount < lowestAccessCount ||
			(entry.accessCount == lowestAccessCount && entry.lastAccess.Before(oldestAccess)) {
			oldestKey = key
			oldestAccess = entry.lastAccess
			lowestAccessCount = entry.accessCount
		}
	}

	if oldestKey != "" {
		delete(m.store, oldestKey)
		m.stats.evictions++
		common.LogInfo("cache entry evicted (LRU)", zap.String("key", oldestKey))
	}
}
