package routes

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"arigatoo-utils/internal/analyzer"
	"arigatoo-utils/internal/api/handlers"
	"arigatoo-utils/internal/api/middleware"
	"arigatoo-utils/internal/cache"
	"arigatoo-utils/internal/config"
	"arigatoo-utils/internal/fetch"
	"arigatoo-utils/internal/llm"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, a *analyzer.Analyzer, llmManager *llm.Manager, fetcher *fetch.Fetcher, remoteCache cache.Store) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Analyze calls may wait on two provider attempts; give them more room
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, 2*time.Minute))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager, remoteCache))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(llmManager, remoteCache))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		parse := v1.Group("/parse")
		{
			parse.POST("/resume", handlers.ParseResumeHandler(cfg))
			parse.POST("/job", handlers.ParseJobHandler(cfg, fetcher))
		}

		v1.POST("/analyze", handlers.AnalyzeHandler(cfg, a))
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"service": "Arigatoo Resume Analyzer",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
