package logging

import (
	"fmt"
)

// Manager manages the logging system initialization and configuration
type Manager struct {
	logger *MultiLogger
}

// NewManager creates a new logging manager
func NewManager() *Manager {
	return &Manager{
		logger: NewMultiLogger(),
	}
}

// Initialize initializes the logging system from adapter configuration
func (m *Manager) Initialize(level string, adapterConfigs []AdapterConfig) error {
	m.logger.SetLevel(ParseLogLevel(level))

	if len(adapterConfigs) == 0 {
		// Default to structured stdout when nothing is configured
		return m.logger.AddAdapter(NewStdoutAdapter("stdout", StdoutConfig{Format: "json"}))
	}

	for _, cfg := range adapterConfigs {
		if !cfg.Enabled {
			continue
		}

		adapter, err := createAdapter(cfg)
		if err != nil {
			return fmt.Errorf("failed to create adapter %s: %w", cfg.Name, err)
		}

		if err := m.logger.AddAdapter(adapter); err != nil {
			return fmt.Errorf("failed to add adapter %s: %w", cfg.Name, err)
		}
	}

	return nil
}

// createAdapter creates a logging adapter based on the provided configuration
func createAdapter(cfg AdapterConfig) (LogAdapter, error) {
	switch cfg.Type {
	case "stdout":
		return NewStdoutAdapter(cfg.Name, StdoutConfig{
			Format:    getStringOption(cfg.Options, "format", "json"),
			Colorized: getBoolOption(cfg.Options, "colorized", false),
		}), nil
	case "file":
		return NewFileAdapter(cfg.Name, FileConfig{
			FilePath:   getStringOption(cfg.Options, "file_path", ""),
			CreateDirs: getBoolOption(cfg.Options, "create_dirs", true),
		})
	default:
		return nil, fmt.Errorf("unsupported adapter type: %s", cfg.Type)
	}
}

// GetLogger returns the initialized logger
func (m *Manager) GetLogger() Logger {
	return m.logger
}

// Close closes the logging system
func (m *Manager) Close() error {
	if m.logger != nil {
		return m.logger.Close()
	}
	return nil
}

// Global manager instance
var globalManager *Manager

// InitializeLogging initializes the global logging system
func InitializeLogging(level string, adapterConfigs []AdapterConfig) error {
	globalManager = NewManager()
	return globalManager.Initialize(level, adapterConfigs)
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() Logger {
	if globalManager == nil {
		manager := NewManager()
		manager.logger.AddAdapter(NewStdoutAdapter("fallback_stdout", StdoutConfig{Format: "json"}))
		globalManager = manager
	}
	return globalManager.GetLogger()
}

// CloseLogging closes the global logging system
func CloseLogging() error {
	if globalManager != nil {
		return globalManager.Close()
	}
	return nil
}

// LogWithRequestID creates a logger with request ID context
func LogWithRequestID(requestID string) Logger {
	return GetGlobalLogger().WithField("request_id", requestID)
}

// Option extraction helpers

func getStringOption(options map[string]interface{}, key string, defaultValue string) string {
	if value, exists := options[key]; exists {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return defaultValue
}

func getBoolOption(options map[string]interface{}, key string, defaultValue bool) bool {
	if value, exists := options[key]; exists {
		if boolVal, ok := value.(bool); ok {
			return boolVal
		}
	}
	return defaultValue
}
