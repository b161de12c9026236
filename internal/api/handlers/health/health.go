package health

import (
	"net/http"
	"runtime"
	"time"

	"smart-shopping/internal/infrastructure/cache"
	"smart-shopping/internal/infrastructure/config"
	"smart-shopping/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Cache     map[string]interface{} `json:"cache,omitempty"`
}

// HealthCheck reports process health plus cache statistics when available.
func HealthCheck(c *gin.Context) {
	cfg, exists := c.Get("config")
	if !exists {
		common.LogError("configuration not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Configuration not found",
		})
		return
	}
	conf, ok := cfg.(*config.Config)
	if !ok {
		common.LogError("invalid configuration type in context")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Invalid configuration type",
		})
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   conf.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	if store, ok := storeFromContext(c); ok {
		if mem, ok := store.(*cache.MemoryStore); ok {
			response.Cache = mem.Stats()
		} else {
			response.Cache = map[string]interface{}{"backend": conf.Cache.Backend}
		}
	}

	common.LogInfo("health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck pings the cache backend; a failing Redis means not ready.
func ReadinessCheck(c *gin.Context) {
	if store, ok := storeFromContext(c); ok {
		if err := store.Ping(c.Request.Context()); err != nil {
			common.LogError("cache ping failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"error":  "cache unavailable",
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck always succeeds while the process can serve requests.
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}

func storeFromContext(c *gin.Context) (cache.Store, bool) {
	v, exists := c.Get("cache_store")
	if !exists || v == nil {
		return nil, false
	}
	store, ok := v.(cache.Store)
	return store, ok && store != nil
}
