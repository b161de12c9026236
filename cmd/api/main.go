package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-shopping/internal/api"
	"smart-shopping/internal/infrastructure/cache"
	"smart-shopping/internal/infrastructure/config"
	"smart-shopping/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("configuration loaded",
		zap.String("env", cfg.App.Env),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.Bool("export_enabled", cfg.Export.Enabled),
	)

	store, err := cache.New(&cfg.Cache)
	if err != nil {
		common.LogFatal("failed to initialize cache store", zap.Error(err))
	}
	if store != nil {
		defer store.Close()
	}

	router, cleanup, err := api.SetupRouter(cfg, store)
	if err != nil {
		common.LogError("failed to setup router", zap.Error(err))
		os.Exit(1)
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("starting application",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	common.LogInfo("server exited")
}
