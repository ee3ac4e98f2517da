package analyzer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arigatoo-utils/internal/config"
	"arigatoo-utils/internal/extract"
	"arigatoo-utils/internal/llm"
	"arigatoo-utils/internal/scoring"
	"arigatoo-utils/pkg/models"
	"arigatoo-utils/pkg/utils"
)

type fakeProvider struct {
	name     string
	response string
	err      error
	calls    int
}

func (p *fakeProvider) Complete(_ context.Context, _, _ string) (string, error) {
	p.calls++
	return p.response, p.err
}

func (p *fakeProvider) IsHealthy(_ context.Context) error { return nil }

func (p *fakeProvider) GetProviderName() string { return p.name }

type fakeChain struct {
	primary    llm.Provider
	secondary  llm.Provider
	withKey    llm.Provider
	withKeyErr error
}

func (c *fakeChain) Primary() llm.Provider   { return c.primary }
func (c *fakeChain) Secondary() llm.Provider { return c.secondary }

func (c *fakeChain) SecondaryWithKey(_ context.Context, _ string) (llm.Provider, error) {
	if c.withKeyErr != nil {
		return nil, c.withKeyErr
	}
	return c.withKey, nil
}

func (c *fakeChain) Acquire(_ context.Context) error { return nil }
func (c *fakeChain) Timeout() time.Duration          { return time.Second }

func newTestAnalyzer(chain ProviderChain) *Analyzer {
	return NewAnalyzer(&config.Config{}, chain, nil)
}

const validProviderJSON = `{
  "overallScore": 88,
  "skillsScore": 90,
  "experienceScore": 80,
  "keywordsScore": 95,
  "matchedKeywords": ["python"],
  "missingKeywords": [],
  "suggestions": []
}`

func TestAnalyze_RejectsMissingInput(t *testing.T) {
	a := newTestAnalyzer(&fakeChain{})
	ctx := context.Background()
	job := &models.JobDescription{RawText: "job"}
	resume := &models.ParsedResume{RawText: "resume"}

	cases := []struct {
		name   string
		resume *models.ParsedResume
		job    *models.JobDescription
	}{
		{"nil resume", nil, job},
		{"blank resume", &models.ParsedResume{RawText: "   "}, job},
		{"nil job", resume, nil},
		{"blank job", resume, &models.JobDescription{RawText: ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := a.Analyze(ctx, tc.resume, tc.job)
			assert.Nil(t, result)

			var customErr *utils.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, 400, customErr.Code)
		})
	}
}

func TestAnalyze_NoProvidersFallsBackToScoring(t *testing.T) {
	a := newTestAnalyzer(&fakeChain{})

	resume := &models.ParsedResume{
		RawText:  "resume text",
		Skills:   []string{"Python"},
		Keywords: []string{"python", "backend"},
	}
	job := &models.JobDescription{
		RawText:  "job text",
		Skills:   []string{"Python", "AWS"},
		Keywords: []string{"python", "cloud"},
	}

	result, err := a.Analyze(context.Background(), resume, job)
	require.NoError(t, err)

	expected := scoring.Score(resume, job)
	assert.Equal(t, expected.Score, result.Score)
	assert.Equal(t, expected.Suggestions, result.Suggestions)
	assert.Equal(t, expected.MatchedKeywords, result.MatchedKeywords)
	assert.Equal(t, expected.MissingKeywords, result.MissingKeywords)

	assert.Contains(t, result.ID, "analysis_")
	assert.False(t, result.CreatedAt.IsZero())
}

func TestAnalyze_PrimaryFailsSecondaryUnparseable(t *testing.T) {
	primary := &fakeProvider{name: "claude", err: errors.New("rate limited")}
	secondary := &fakeProvider{name: "gemini", response: "I cannot produce that analysis."}
	a := newTestAnalyzer(&fakeChain{primary: primary, secondary: secondary})

	resume := &models.ParsedResume{RawText: "resume", Keywords: []string{"python"}}
	job := &models.JobDescription{RawText: "job", Keywords: []string{"python", "golang"}}

	result, err := a.Analyze(context.Background(), resume, job)
	require.NoError(t, err)

	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)

	// Both providers failed to produce usable output, so the result must be
	// exactly the deterministic scoring outcome
	expected := scoring.Score(resume, job)
	assert.Equal(t, expected.Score, result.Score)
	assert.Equal(t, expected.MatchedKeywords, result.MatchedKeywords)
	assert.Equal(t, expected.MissingKeywords, result.MissingKeywords)
}

func TestAnalyze_PrimaryResponseUsed(t *testing.T) {
	primary := &fakeProvider{name: "claude", response: "Sure! " + validProviderJSON + " Good luck!"}
	secondary := &fakeProvider{name: "gemini", response: validProviderJSON}
	a := newTestAnalyzer(&fakeChain{primary: primary, secondary: secondary})

	resume := &models.ParsedResume{RawText: "resume"}
	job := &models.JobDescription{RawText: "job"}

	result, err := a.Analyze(context.Background(), resume, job)
	require.NoError(t, err)

	assert.Equal(t, 88, result.Score.Overall)
	assert.Equal(t, []string{"python"}, result.MatchedKeywords)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls, "secondary must not run when primary succeeds")
}

func TestAnalyze_SecondaryUsedWhenPrimaryFails(t *testing.T) {
	primary := &fakeProvider{name: "claude", err: errors.New("unavailable")}
	secondary := &fakeProvider{name: "gemini", response: validProviderJSON}
	a := newTestAnalyzer(&fakeChain{primary: primary, secondary: secondary})

	result, err := a.Analyze(context.Background(),
		&models.ParsedResume{RawText: "resume"},
		&models.JobDescription{RawText: "job"})
	require.NoError(t, err)

	assert.Equal(t, 88, result.Score.Overall)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestAnalyze_CacheHitSkipsProviders(t *testing.T) {
	primary := &fakeProvider{name: "claude", response: validProviderJSON}
	a := newTestAnalyzer(&fakeChain{primary: primary})

	resume := &models.ParsedResume{RawText: "cached resume"}
	job := &models.JobDescription{RawText: "cached job"}
	ctx := context.Background()

	first, err := a.Analyze(ctx, resume, job)
	require.NoError(t, err)

	second, err := a.Analyze(ctx, resume, job)
	require.NoError(t, err)

	assert.Equal(t, 1, primary.calls, "second call must be served from cache")
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Score, second.Score)
}

func TestAnalyzeWithUserKey_BuildsOneOffSecondary(t *testing.T) {
	oneOff := &fakeProvider{name: "gemini", response: validProviderJSON}
	a := newTestAnalyzer(&fakeChain{withKey: oneOff})

	result, err := a.AnalyzeWithUserKey(context.Background(),
		&models.ParsedResume{RawText: "resume"},
		&models.JobDescription{RawText: "job"},
		"user-supplied-key")
	require.NoError(t, err)

	assert.Equal(t, 1, oneOff.calls)
	assert.Equal(t, 88, result.Score.Overall)
}

func TestAnalyzeWithUserKey_BadKeyStillProducesResult(t *testing.T) {
	a := newTestAnalyzer(&fakeChain{withKeyErr: errors.New("invalid credential")})

	resume := &models.ParsedResume{RawText: "resume", Keywords: []string{"python"}}
	job := &models.JobDescription{RawText: "job", Keywords: []string{"python"}}

	result, err := a.AnalyzeWithUserKey(context.Background(), resume, job, "bad-key")
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score.Keywords)
}

func TestAnalyze_EndToEndDeterministic(t *testing.T) {
	resumeText := "John Doe\nSkilled in Python and React development"
	jobText := "Requirements: Python, React, AWS"

	resume := extract.ExtractResumeData(resumeText)
	job := extract.ExtractJobData(jobText, "")

	a := newTestAnalyzer(&fakeChain{})
	result, err := a.Analyze(context.Background(), resume, job)
	require.NoError(t, err)

	assert.Contains(t, result.MatchedKeywords, "python")
	assert.Contains(t, result.MatchedKeywords, "react")
	assert.Contains(t, result.MissingKeywords, "requirements")

	require.NotEmpty(t, result.Suggestions)
	skillsSuggestion := result.Suggestions[0]
	assert.Equal(t, models.CategorySkills, skillsSuggestion.Category)
	assert.Contains(t, skillsSuggestion.Description, "AWS")
}
