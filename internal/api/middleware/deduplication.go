package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smart-shopping/internal/pkg/common"
)

const dedupCleanupInterval = 10 * time.Minute

// Deduplicator remembers recent POST fingerprints so a double-submitted
// request inside the window gets rejected instead of consolidated twice.
type Deduplicator struct {
	mu       sync.RWMutex
	seen     map[string]time.Time
	window   time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

// NewDeduplicator starts the background sweep. Call Stop on shutdown.
func NewDeduplicator(window time.Duration) *Deduplicator {
	if window <= 0 {
		window = time.Second
	}
	d := &Deduplicator{
		seen:   make(map[string]time.Time),
		window: window,
		done:   make(chan struct{}),
	}
	go d.cleanupLoop()
	return d
}

// Stop terminates the sweep goroutine.
func (d *Deduplicator) Stop() {
	d.stopOnce.Do(func() { close(d.done) })
}

func (d *Deduplicator) cleanupLoop() {
	ticker := time.NewTicker(dedupCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-d.done:
			return
		case <-ticker.C:
			now := time.Now()
			d.mu.Lock()
			for k, t := range d.seen {
				if now.Sub(t) > 10*d.window {
					delete(d.seen, k)
				}
			}
			d.mu.Unlock()
		}
	}
}

// Middleware fingerprints POST bodies by SHA-256 and rejects repeats
// observed within the window.
func (d *Deduplicator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		bodyHash := ""
		if c.Request.Body != nil {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				common.LogError("failed to read request body", zap.Error(err))
				c.Next()
				return
			}

			hash := sha256.Sum256(body)
			bodyHash = hex.EncodeToString(hash[:])

			// Handlers still need the body after hashing.
			c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
		}

		fingerprint := c.Request.Method + ":" + c.Request.URL.Path
		if bodyHash != "" {
			fingerprint += ":" + bodyHash
		}

		now := time.Now()
		d.mu.RLock()
		lastTime, exists := d.seen[fingerprint]
		d.mu.RUnlock()
		if exists && now.Sub(lastTime) <= d.window {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Request too frequent",
				"code":  "TOO_MANY_REQUESTS",
			})
			c.Abort()
			return
		}

		d.mu.Lock()
		d.seen[fingerprint] = now
		d.mu.Unlock()

		c.Next()
	}
}
