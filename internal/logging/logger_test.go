package logging

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureAdapter records entries for assertions
type captureAdapter struct {
	mu      sync.Mutex
	name    string
	entries []*LogEntry
}

func (a *captureAdapter) Write(entry *LogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
	return nil
}

func (a *captureAdapter) Close() error { return nil }
func (a *captureAdapter) Name() string { return a.name }

func (a *captureAdapter) last() *LogEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.entries) == 0 {
		return nil
	}
	return a.entries[len(a.entries)-1]
}

func newCapturedLogger(t *testing.T) (*MultiLogger, *captureAdapter) {
	t.Helper()
	logger := NewMultiLogger()
	adapter := &captureAdapter{name: "capture"}
	require.NoError(t, logger.AddAdapter(adapter))
	return logger, adapter
}

func TestMultiLogger_LevelFiltering(t *testing.T) {
	logger, adapter := newCapturedLogger(t)
	logger.SetLevel(WarnLevel)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	require.Len(t, adapter.entries, 2)
	assert.Equal(t, "warn message", adapter.entries[0].Message)
	assert.Equal(t, ErrorLevel, adapter.entries[1].Level)
}

func TestMultiLogger_WithField(t *testing.T) {
	logger, adapter := newCapturedLogger(t)

	logger.WithField("request_id", "abc123").Info("handled")

	entry := adapter.last()
	require.NotNil(t, entry)
	assert.Equal(t, "abc123", entry.Fields["request_id"])

	// The parent logger keeps its own field set
	logger.Info("plain")
	assert.NotContains(t, adapter.last().Fields, "request_id")
}

func TestMultiLogger_CallSiteFieldsMerge(t *testing.T) {
	logger, adapter := newCapturedLogger(t)

	logger.WithFields(map[string]interface{}{"a": 1, "b": 2}).
		Info("merged", map[string]interface{}{"b": 3, "c": 4})

	entry := adapter.last()
	require.NotNil(t, entry)
	assert.Equal(t, 1, entry.Fields["a"])
	// Call-site fields win over logger fields
	assert.Equal(t, 3, entry.Fields["b"])
	assert.Equal(t, 4, entry.Fields["c"])
}

func TestMultiLogger_DuplicateAdapterRejected(t *testing.T) {
	logger, _ := newCapturedLogger(t)

	err := logger.AddAdapter(&captureAdapter{name: "capture"})
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLogLevel("debug"))
	assert.Equal(t, InfoLevel, ParseLogLevel("info"))
	assert.Equal(t, WarnLevel, ParseLogLevel("warn"))
	assert.Equal(t, WarnLevel, ParseLogLevel("warning"))
	assert.Equal(t, ErrorLevel, ParseLogLevel("ERROR"))
	assert.Equal(t, FatalLevel, ParseLogLevel("fatal"))
	assert.Equal(t, InfoLevel, ParseLogLevel("unknown"))
	assert.Equal(t, InfoLevel, ParseLogLevel(""))
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "debug", DebugLevel.String())
	assert.Equal(t, "info", InfoLevel.String())
	assert.Equal(t, "warn", WarnLevel.String())
	assert.Equal(t, "error", ErrorLevel.String())
	assert.Equal(t, "fatal", FatalLevel.String())
}

func TestManagerInitialize_DefaultsToStdout(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Initialize("info", nil))
	assert.NotNil(t, m.GetLogger())
}

func TestManagerInitialize_SkipsDisabledAdapters(t *testing.T) {
	m := NewManager()
	err := m.Initialize("debug", []AdapterConfig{
		{Name: "off", Type: "bogus", Enabled: false},
	})
	assert.NoError(t, err)
}

func TestManagerInitialize_UnsupportedAdapterType(t *testing.T) {
	m := NewManager()
	err := m.Initialize("info", []AdapterConfig{
		{Name: "weird", Type: "syslog", Enabled: true},
	})
	assert.Error(t, err)
}
