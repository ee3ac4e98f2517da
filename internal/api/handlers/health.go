package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"arigatoo-utils/internal/cache"
	"arigatoo-utils/internal/llm"
	"arigatoo-utils/internal/logging"
	"arigatoo-utils/pkg/models"
	"arigatoo-utils/pkg/utils"
)

var startTime = time.Now()

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logger := logging.GetGlobalLogger()

	logger.Debug("Health check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler handles readiness probe requests. The service stays ready
// without providers or a remote cache; the deterministic fallback covers
// both.
func ReadinessHandler(llmManager *llm.Manager, remoteCache cache.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		logger.Debug("Readiness check requested", map[string]interface{}{"request_id": requestID})

		checks := map[string]string{
			"api": "ok",
			"llm": "unconfigured",
		}
		if llmManager.IsHealthy() {
			checks["llm"] = "ok"
		}

		checks["cache"] = "memory"
		if remoteCache != nil && remoteCache.IsAvailable() {
			checks["cache"] = "redis"
		}

		response := models.HealthResponse{
			Status:    "ready",
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks:    checks,
		}

		return c.JSON(http.StatusOK, response)
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logger := logging.GetGlobalLogger()

	logger.Debug("Liveness check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}

// StatusHandler provides detailed service status
func StatusHandler(llmManager *llm.Manager, remoteCache cache.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		logger.Debug("Status check requested", map[string]interface{}{"request_id": requestID})

		checks := map[string]string{
			"api": "operational",
		}

		if llmManager.IsHealthy() {
			checks["providers"] = "configured"
		} else {
			checks["providers"] = "fallback_only"
		}

		if remoteCache != nil && remoteCache.IsAvailable() {
			checks["cache"] = "redis"
		} else {
			checks["cache"] = "memory"
		}

		response := models.HealthResponse{
			Status:    "operational",
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks:    checks,
		}

		return c.JSON(http.StatusOK, response)
	}
}
