package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arigatoo-utils/pkg/models"
)

func TestKey_Deterministic(t *testing.T) {
	key1 := Key("resume text", "job text")
	key2 := Key("resume text", "job text")

	assert.Equal(t, key1, key2)
	assert.True(t, strings.HasPrefix(key1, "analysis:"))
	// sha256 hex digest
	assert.Len(t, strings.TrimPrefix(key1, "analysis:"), 64)
}

func TestKey_DistinguishesInputs(t *testing.T) {
	base := Key("resume", "job")

	assert.NotEqual(t, base, Key("resume", "other job"))
	assert.NotEqual(t, base, Key("other resume", "job"))
	assert.NotEqual(t, Key("resume", "job"), Key("job", "resume"))
}

func TestKey_FingerprintsFirst500Chars(t *testing.T) {
	prefix := strings.Repeat("a", 500)

	// Divergence past the fingerprint window is invisible to the key
	assert.Equal(t, Key(prefix+"tail one", "job"), Key(prefix+"tail two", "job"))
	assert.Equal(t, Key("resume", prefix+"x"), Key("resume", prefix+"y"))

	// Divergence inside the window is not
	assert.NotEqual(t, Key(prefix[:499]+"b", "job"), Key(prefix[:499]+"c", "job"))
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	result := &models.AnalysisResult{
		ID:    "analysis_test",
		Score: models.CompatibilityScore{Overall: 83, Skills: 100, Experience: 50, Keywords: 100},
	}

	_, ok := store.Get(ctx, "missing")
	assert.False(t, ok)

	store.Set(ctx, "key", result, time.Minute)

	got, ok := store.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, result, got)
	assert.True(t, store.IsAvailable())
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "key", &models.AnalysisResult{ID: "a"}, -time.Second)

	_, ok := store.Get(ctx, "key")
	assert.False(t, ok)
}

func TestMemoryStore_Overwrite(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "key", &models.AnalysisResult{ID: "first"}, time.Minute)
	store.Set(ctx, "key", &models.AnalysisResult{ID: "second"}, time.Minute)

	got, ok := store.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, "second", got.ID)
}
