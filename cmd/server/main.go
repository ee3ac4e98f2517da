package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"arigatoo-utils/internal/analyzer"
	"arigatoo-utils/internal/api/routes"
	"arigatoo-utils/internal/cache"
	"arigatoo-utils/internal/config"
	"arigatoo-utils/internal/fetch"
	"arigatoo-utils/internal/llm"
	"arigatoo-utils/internal/logging"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg.Logging.Level, cfg.Logging.Adapters); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := logging.GetGlobalLogger()
	logger.Info("Starting Arigatoo Resume Analyzer")

	// Initialize provider manager
	llmManager := llm.NewManager(cfg)
	ctx := context.Background()
	if err := llmManager.Start(ctx); err != nil {
		logger.Fatal("Failed to start provider manager", map[string]interface{}{"error": err.Error()})
	}

	// Initialize remote cache; nil means memory-only operation
	var remoteCache cache.Store
	redisStore := cache.NewRedisStore(cfg)
	if redisStore != nil {
		remoteCache = redisStore
		logger.Info("Redis cache configured", map[string]interface{}{"url": cfg.Redis.URL})
	} else {
		logger.Warn("Redis not configured, using in-memory cache")
	}

	// Initialize analyzer and fetcher
	a := analyzer.NewAnalyzer(cfg, llmManager, remoteCache)
	fetcher := fetch.NewFetcher(cfg)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	routes.SetupRoutes(e, cfg, a, llmManager, fetcher, remoteCache)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := llmManager.Stop(); err != nil {
			logger.Error("Error stopping provider manager", map[string]interface{}{"error": err.Error()})
		}

		if redisStore != nil {
			if err := redisStore.Close(); err != nil {
				logger.Error("Error closing Redis connection", map[string]interface{}{"error": err.Error()})
			}
		}

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
		logging.CloseLogging()
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Fatal("Server failed to start", map[string]interface{}{"error": err.Error()})
	}
}
