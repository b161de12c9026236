package api

import (
	"context"
	"net/http"
	"time"

	"smart-shopping/internal/api/handlers/health"
	recipesHandler "smart-shopping/internal/api/handlers/recipes"
	shoppingHandler "smart-shopping/internal/api/handlers/shopping"
	"smart-shopping/internal/api/middleware"
	"smart-shopping/internal/core/export"
	"smart-shopping/internal/core/recipe"
	"smart-shopping/internal/infrastructure/cache"
	"smart-shopping/internal/infrastructure/config"
	"smart-shopping/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	timeoutDuration = 30 * time.Second
	// Request body cap (1MB), recipe payloads are small.
	maxBodySize = 1 << 20
)

// SetupRouter wires middleware, services and routes into the gin engine.
// The returned cleanup stops background goroutines and must run on shutdown.
func SetupRouter(cfg *config.Config, store cache.Store) (*gin.Engine, func(), error) {
	common.LogInfo("starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	dedup := middleware.NewDeduplicator(cfg.DedupWindow)
	router.Use(dedup.Middleware())

	common.LogInfo("initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.Bool("export_enabled", cfg.Export.Enabled),
		zap.Duration("timeout", timeoutDuration),
	)

	recipeSvc := recipe.NewService(store, cfg.Cache.TTL)
	exporter := export.NewClient(&cfg.Export)

	// Request timeout plus context injection for the handlers.
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		if store != nil {
			c.Set("cache_store", store)
		}

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
		}
	})

	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	api := router.Group("/api/v1")
	{
		shoppingH := shoppingHandler.NewHandler(exporter)
		shoppingGroup := api.Group("/shopping")
		{
			shoppingGroup.POST("/consolidate", shoppingH.HandleConsolidate)
			shoppingGroup.POST("/suggestions", shoppingH.HandleSuggestions)
		}

		recipesH := recipesHandler.NewHandler(recipeSvc)
		recipesGroup := api.Group("/recipes")
		{
			recipesGroup.POST("/search", recipesH.HandleSearch)
		}
	}

	common.LogInfo("router setup completed",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("cache_store_initialized", store != nil),
		zap.Bool("export_enabled", exporter != nil),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, dedup.Stop, nil
}
