package llm

import (
	"context"
	"fmt"

	"arigatoo-utils/internal/config"
	"arigatoo-utils/internal/llm/providers"
)

// Factory creates text-completion provider instances
type Factory struct {
	config *config.Config
}

// NewFactory creates a new provider factory instance
func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		config: cfg,
	}
}

// CreatePrimaryProvider creates the configured chat-completion provider, or
// nil when no credential is configured
func (f *Factory) CreatePrimaryProvider() (Provider, error) {
	if f.config.LLM.APIKey == "" {
		return nil, nil
	}

	switch f.config.LLM.Provider {
	case "claude":
		return providers.NewClaudeProvider(f.config), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", f.config.LLM.Provider)
	}
}

// CreateSecondaryProvider creates the system-configured Gemini provider, or
// nil when no credential is configured
func (f *Factory) CreateSecondaryProvider(ctx context.Context) (Provider, error) {
	if f.config.Gemini.APIKey == "" {
		return nil, nil
	}
	return providers.NewGeminiProvider(ctx, f.config, f.config.Gemini.APIKey)
}

// CreateGeminiWithKey creates a one-off Gemini provider from a
// caller-supplied credential
func (f *Factory) CreateGeminiWithKey(ctx context.Context, apiKey string) (Provider, error) {
	return providers.NewGeminiProvider(ctx, f.config, apiKey)
}

// GetSupportedProviders returns a list of supported primary providers
func (f *Factory) GetSupportedProviders() []string {
	return []string{"claude"}
}
