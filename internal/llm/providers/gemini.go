package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"arigatoo-utils/internal/config"
	"arigatoo-utils/internal/logging"
)

// GeminiProvider implements the text-completion provider interface using
// Google's Gemini. It backs both the system-configured secondary provider
// and one-off clients built from caller-supplied keys.
type GeminiProvider struct {
	client *genai.Client
	model  string
	logger logging.Logger
}

// NewGeminiProvider creates a Gemini provider with the given API key
func NewGeminiProvider(ctx context.Context, cfg *config.Config, apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		model:  cfg.Gemini.Model,
		logger: logging.GetGlobalLogger(),
	}, nil
}

// Complete sends the prompts to Gemini and returns the raw response text
func (gp *GeminiProvider) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	startTime := time.Now()

	// Gemini takes a single prompt for direct generation
	prompt := userPrompt
	if systemPrompt != "" {
		prompt = systemPrompt + "\n\n" + userPrompt
	}

	model := gp.client.GenerativeModel(gp.model)
	model.SetTemperature(0.1)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}

	responseText, err := extractGeminiText(resp)
	if err != nil {
		return "", err
	}

	gp.logger.Debug("Gemini completion finished", map[string]interface{}{
		"provider":        "gemini",
		"processing_time": time.Since(startTime),
		"response_length": len(responseText),
	})

	return responseText, nil
}

// IsHealthy checks if the Gemini provider is usable
func (gp *GeminiProvider) IsHealthy(_ context.Context) error {
	if gp.client == nil {
		return fmt.Errorf("Gemini client not initialized")
	}
	return nil
}

// GetProviderName returns the name of the provider
func (gp *GeminiProvider) GetProviderName() string {
	return "gemini"
}

// Close releases the underlying client
func (gp *GeminiProvider) Close() error {
	if gp.client != nil {
		return gp.client.Close()
	}
	return nil
}

// extractGeminiText pulls the text parts out of a Gemini response
func extractGeminiText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in Gemini response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in Gemini response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in Gemini response")
	}

	return strings.Join(parts, ""), nil
}
