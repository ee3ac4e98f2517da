package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"arigatoo-utils/internal/config"
	"arigatoo-utils/internal/extract"
	"arigatoo-utils/internal/fetch"
	"arigatoo-utils/internal/logging"
	"arigatoo-utils/pkg/models"
	"arigatoo-utils/pkg/utils"
)

var validate = validator.New()

// ParseResumeHandler handles resume text parsing requests
func ParseResumeHandler(cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		var req models.ParseResumeRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind parse resume request", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Parse resume request validation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   "resume text is required",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		resume := extract.ExtractResumeData(req.Text)

		logger.Info("Resume parsed", map[string]interface{}{
			"skills_found":   len(resume.Skills),
			"keywords_found": len(resume.Keywords),
		})

		return c.JSON(http.StatusOK, models.ParseResponse{
			Success:        true,
			Resume:         resume,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}

// ParseJobHandler handles job description parsing requests. Callers supply
// either raw text or a URL to fetch.
func ParseJobHandler(cfg *config.Config, fetcher *fetch.Fetcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		var req models.ParseJobRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind parse job request", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Parse job request validation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		text := req.Text
		if strings.TrimSpace(text) == "" && req.URL != "" {
			fetched, err := fetcher.FetchJobDescription(c.Request().Context(), req.URL)
			if err != nil {
				logger.Error("Failed to fetch job description", map[string]interface{}{
					"url":   req.URL,
					"error": err.Error(),
				})
				return c.JSON(http.StatusBadGateway, models.ErrorResponse{
					Error:     "fetch_failed",
					Message:   err.Error(),
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
			text = fetched
		}

		if strings.TrimSpace(text) == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   "job description text or url is required",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		job := extract.ExtractJobData(text, req.URL)
		job.ID = utils.GenerateRequestID()

		logger.Info("Job description parsed", map[string]interface{}{
			"requirements_found": len(job.Requirements),
			"skills_found":       len(job.Skills),
		})

		return c.JSON(http.StatusOK, models.ParseResponse{
			Success:        true,
			Job:            job,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}
