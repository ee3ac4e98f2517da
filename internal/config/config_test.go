package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, "claude-3-haiku-20240307", cfg.LLM.Model)
	assert.Equal(t, 4096, cfg.LLM.MaxTokens)
	assert.Equal(t, 60, cfg.LLM.RateLimit)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 10*time.Second, cfg.Fetcher.RequestTimeout)
	assert.Equal(t, int64(5*1024*1024), cfg.Fetcher.MaxBodySize)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	content := `
server:
  port: 9090
llm:
  model: claude-sonnet-4-20250514
cache:
  ttl: 30m
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "claude-sonnet-4-20250514", cfg.LLM.Model)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	// Unset fields keep their defaults
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("CACHE_TTL", "15m")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "test-key", cfg.LLM.APIKey)
	assert.Equal(t, 15*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("TEST_EXPAND_VAR", "secret")

	assert.Equal(t, "key: secret", expandEnvVars("key: ${TEST_EXPAND_VAR}"))
	assert.Equal(t, "key: secret", expandEnvVars("key: $TEST_EXPAND_VAR"))
	// Unset variables are left as-is
	assert.Equal(t, "key: ${TEST_UNSET_VAR}", expandEnvVars("key: ${TEST_UNSET_VAR}"))
}

func TestLoadConfig_EnvExpansionInYAML(t *testing.T) {
	t.Setenv("TEST_REDIS_URL", "redis://localhost:6379")

	content := "redis:\n  url: ${TEST_REDIS_URL}\n"
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "redis://localhost:6379", cfg.Redis.URL)
}
