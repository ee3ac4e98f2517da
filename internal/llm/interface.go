package llm

import "context"

// Provider defines the interface for text-completion providers. A provider
// turns a prompt pair into raw response text; interpreting that text is the
// caller's concern.
type Provider interface {
	// Complete sends the prompts to the provider and returns the response text
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// IsHealthy checks if the provider is configured and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the provider
	GetProviderName() string
}
