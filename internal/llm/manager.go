package llm

import (
	"context"
	"sync"
	"time"

	"arigatoo-utils/internal/config"
	"arigatoo-utils/internal/logging"
)

// Manager manages the provider chain and its lifecycle. The primary provider
// is attempted first on every analysis; the secondary only after the primary
// definitively fails.
type Manager struct {
	config    *config.Config
	factory   *Factory
	primary   Provider
	secondary Provider
	limiter   *CallLimiter
	logger    logging.Logger
	mu        sync.RWMutex
	healthy   bool
}

// NewManager creates a new provider manager instance
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		config:  cfg,
		factory: NewFactory(cfg),
		limiter: NewCallLimiter(cfg.LLM.RateLimit),
		logger:  logging.GetGlobalLogger(),
	}
}

// Start creates the configured providers. Missing credentials leave a slot
// empty rather than failing: the deterministic fallback covers the gap.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	primary, err := m.factory.CreatePrimaryProvider()
	if err != nil {
		m.logger.Warn("Failed to create primary provider - continuing without it", map[string]interface{}{
			"provider": m.config.LLM.Provider,
			"error":    err.Error(),
		})
	} else {
		m.primary = primary
	}

	secondary, err := m.factory.CreateSecondaryProvider(ctx)
	if err != nil {
		m.logger.Warn("Failed to create secondary provider - continuing without it", map[string]interface{}{
			"provider": "gemini",
			"error":    err.Error(),
		})
	} else {
		m.secondary = secondary
	}

	m.healthy = m.primary != nil || m.secondary != nil
	if !m.healthy {
		m.logger.Warn("No AI provider configured - analyses will use the deterministic fallback")
	} else {
		m.logger.Info("Provider manager started", map[string]interface{}{
			"primary_configured":   m.primary != nil,
			"secondary_configured": m.secondary != nil,
		})
	}

	return nil
}

// Stop shuts down the provider manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if closer, ok := m.secondary.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			m.logger.Warn("Error closing secondary provider", map[string]interface{}{"error": err.Error()})
		}
	}

	m.primary = nil
	m.secondary = nil
	m.healthy = false
	return nil
}

// Primary returns the primary provider, or nil when unconfigured
func (m *Manager) Primary() Provider {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.primary
}

// Secondary returns the system-configured secondary provider, or nil
func (m *Manager) Secondary() Provider {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.secondary
}

// SecondaryWithKey builds a one-off secondary provider from a caller-supplied
// credential
func (m *Manager) SecondaryWithKey(ctx context.Context, apiKey string) (Provider, error) {
	return m.factory.CreateGeminiWithKey(ctx, apiKey)
}

// Acquire blocks until an outbound call slot is available
func (m *Manager) Acquire(ctx context.Context) error {
	return m.limiter.Wait(ctx)
}

// IsHealthy reports whether at least one provider is configured
func (m *Manager) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthy
}

// Timeout returns the per-call provider deadline
func (m *Manager) Timeout() time.Duration {
	return m.config.LLM.Timeout
}
