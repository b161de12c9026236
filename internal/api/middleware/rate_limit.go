package middleware

import (
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"smart-shopping/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimiter is a token bucket shared by all requests. Tokens are held as
// a float so that refills smaller than one token accumulate instead of being
// truncated away on every call.
type RateLimiter struct {
	mu       sync.Mutex
	tokens   float64
	capacity float64
	rate     float64
	lastTime time.Time
}

// NewRateLimiter allows roughly requests per window, refilling continuously.
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		tokens:   float64(requests),
		capacity: float64(requests),
		rate:     float64(requests) / window.Seconds(),
		lastTime: time.Now(),
	}
}

// Allow consumes a token if one is available.
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(rl.lastTime).Seconds()
	rl.lastTime = now

	rl.tokens = math.Min(rl.capacity, rl.tokens+elapsed*rl.rate)

	if rl.tokens >= 1 {
		rl.tokens--
		return true
	}

	return false
}

// RateLimit rejects requests over the configured rate with 429.
func RateLimit(requests int, window time.Duration) gin.HandlerFunc {
	limiter := NewRateLimiter(requests, window)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			common.LogInfo("rate limit exceeded",
				zap.String("ip", c.ClientIP()),
				zap.String("path", c.Request.URL.Path),
			)

			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests",
				"retry_after": window.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
