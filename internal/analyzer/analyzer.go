// Package analyzer composes the extractor, cache, provider chain and scoring
// engine into the end-to-end analysis operation. Its central guarantee is
// graceful degradation: cache, then primary provider, then secondary
// provider, then the deterministic scoring engine. A caller always gets a
// usable result; only missing input is an error.
package analyzer

import (
	"context"
	"strings"
	"time"

	"arigatoo-utils/internal/cache"
	"arigatoo-utils/internal/config"
	"arigatoo-utils/internal/llm"
	"arigatoo-utils/internal/logging"
	"arigatoo-utils/internal/scoring"
	"arigatoo-utils/pkg/models"
	"arigatoo-utils/pkg/utils"
)

// ProviderChain supplies the providers for the fallback chain. Satisfied by
// llm.Manager; tests substitute fakes.
type ProviderChain interface {
	Primary() llm.Provider
	Secondary() llm.Provider
	SecondaryWithKey(ctx context.Context, apiKey string) (llm.Provider, error)
	Acquire(ctx context.Context) error
	Timeout() time.Duration
}

// Analyzer runs resume/job compatibility analyses
type Analyzer struct {
	config      *config.Config
	providers   ProviderChain
	remoteStore cache.Store
	memoryStore *cache.MemoryStore
	ttl         time.Duration
	logger      logging.Logger
}

// NewAnalyzer creates an analyzer. remoteStore may be nil; the in-process
// fallback cache always exists.
func NewAnalyzer(cfg *config.Config, providerManager ProviderChain, remoteStore cache.Store) *Analyzer {
	ttl := cfg.Cache.TTL
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}

	return &Analyzer{
		config:      cfg,
		providers:   providerManager,
		remoteStore: remoteStore,
		memoryStore: cache.NewMemoryStore(),
		ttl:         ttl,
		logger:      logging.GetGlobalLogger(),
	}
}

// Analyze runs the full analysis pipeline with the system-configured
// provider chain
func (a *Analyzer) Analyze(ctx context.Context, resume *models.ParsedResume, job *models.JobDescription) (*models.AnalysisResult, error) {
	return a.analyze(ctx, resume, job, "")
}

// AnalyzeWithUserKey runs the same pipeline, but builds the secondary
// provider from a caller-supplied Gemini credential
func (a *Analyzer) AnalyzeWithUserKey(ctx context.Context, resume *models.ParsedResume, job *models.JobDescription, geminiAPIKey string) (*models.AnalysisResult, error) {
	return a.analyze(ctx, resume, job, geminiAPIKey)
}

func (a *Analyzer) analyze(ctx context.Context, resume *models.ParsedResume, job *models.JobDescription, userKey string) (*models.AnalysisResult, error) {
	if resume == nil || strings.TrimSpace(resume.RawText) == "" {
		return nil, utils.NewBadRequestError("resume text is required")
	}
	if job == nil || strings.TrimSpace(job.RawText) == "" {
		return nil, utils.NewBadRequestError("job description text is required")
	}

	key := cache.Key(resume.RawText, job.RawText)
	store := a.store()

	if cached, ok := store.Get(ctx, key); ok {
		a.logger.Info("Analysis cache hit", map[string]interface{}{
			"cache_key": key,
			"remote":    store == a.remoteStore,
		})
		return cached, nil
	}

	var result *models.AnalysisResult

	if response := a.completeWithFallback(ctx, resume, job, userKey); response != "" {
		parsed, err := parseProviderResponse(response)
		if err != nil {
			a.logger.Warn("Failed to parse provider response, using deterministic fallback", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			result = parsed
		}
	}

	if result == nil {
		result = resultFromScoring(scoring.Score(resume, job))
	}

	result.ID = utils.GenerateAnalysisID()
	result.CreatedAt = time.Now()

	store.Set(ctx, key, result, a.ttl)

	return result, nil
}

// store returns the remote cache when it is configured and reachable,
// otherwise the in-process fallback
func (a *Analyzer) store() cache.Store {
	if a.remoteStore != nil && a.remoteStore.IsAvailable() {
		return a.remoteStore
	}
	return a.memoryStore
}

// completeWithFallback walks the provider chain sequentially. The secondary
// is only attempted after the primary definitively fails; every failure is
// absorbed and logged. Returns "" when no provider produced text.
func (a *Analyzer) completeWithFallback(ctx context.Context, resume *models.ParsedResume, job *models.JobDescription, userKey string) string {
	systemPrompt, userPrompt := buildAnalysisPrompt(resume, job)

	if primary := a.providers.Primary(); primary != nil {
		if text, ok := a.callProvider(ctx, primary, systemPrompt, userPrompt); ok {
			return text
		}
	}

	secondary := a.providers.Secondary()
	if userKey != "" {
		oneOff, err := a.providers.SecondaryWithKey(ctx, userKey)
		if err != nil {
			a.logger.Warn("Failed to build provider from user key", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			secondary = oneOff
			if closer, ok := oneOff.(interface{ Close() error }); ok {
				defer closer.Close()
			}
		}
	}

	if secondary != nil {
		if text, ok := a.callProvider(ctx, secondary, systemPrompt, userPrompt); ok {
			return text
		}
	}

	return ""
}

// callProvider runs a single provider call under the rate limiter and the
// configured timeout
func (a *Analyzer) callProvider(ctx context.Context, provider llm.Provider, systemPrompt, userPrompt string) (string, bool) {
	if err := a.providers.Acquire(ctx); err != nil {
		a.logger.Warn("Provider call slot unavailable", map[string]interface{}{
			"provider": provider.GetProviderName(),
			"error":    err.Error(),
		})
		return "", false
	}

	callCtx, cancel := context.WithTimeout(ctx, a.providers.Timeout())
	defer cancel()

	text, err := provider.Complete(callCtx, systemPrompt, userPrompt)
	if err != nil {
		a.logger.Warn("Provider call failed, falling through", map[string]interface{}{
			"provider": provider.GetProviderName(),
			"error":    err.Error(),
		})
		return "", false
	}

	return text, true
}

// resultFromScoring shapes a deterministic scoring result into the external
// analysis contract
func resultFromScoring(sr *scoring.Result) *models.AnalysisResult {
	return &models.AnalysisResult{
		Score:           sr.Score,
		Suggestions:     sr.Suggestions,
		MatchedKeywords: sr.MatchedKeywords,
		MissingKeywords: sr.MissingKeywords,
	}
}
