package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"arigatoo-utils/internal/analyzer"
	"arigatoo-utils/internal/config"
	"arigatoo-utils/internal/logging"
	"arigatoo-utils/pkg/models"
	"arigatoo-utils/pkg/utils"
)

// AnalyzeHandler handles resume/job compatibility analysis requests
func AnalyzeHandler(cfg *config.Config, a *analyzer.Analyzer) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		var req models.AnalyzeRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind analyze request", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Analyze request validation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   "resume and job description are required",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		ctx := c.Request().Context()

		var result *models.AnalysisResult
		var err error
		if req.GeminiAPIKey != "" {
			result, err = a.AnalyzeWithUserKey(ctx, req.Resume, req.Job, req.GeminiAPIKey)
		} else {
			result, err = a.Analyze(ctx, req.Resume, req.Job)
		}

		if err != nil {
			var customErr *utils.CustomError
			status := http.StatusInternalServerError
			if errors.As(err, &customErr) {
				status = customErr.Code
			}

			logger.Error("Analysis failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(status, models.ErrorResponse{
				Error:     "analysis_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Analysis completed", map[string]interface{}{
			"analysis_id":     result.ID,
			"overall_score":   result.Score.Overall,
			"processing_time": time.Since(startTime),
		})

		return c.JSON(http.StatusOK, models.AnalyzeResponse{
			Success:        true,
			Analysis:       result,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}
