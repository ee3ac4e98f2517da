package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"arigatoo-utils/pkg/models"
	"arigatoo-utils/pkg/utils"
)

// providerAnalysis mirrors the JSON schema the prompt instructs providers to
// follow. Score pointers distinguish absent fields from explicit zeros.
type providerAnalysis struct {
	OverallScore    *int                 `json:"overallScore"`
	SkillsScore     *int                 `json:"skillsScore"`
	ExperienceScore *int                 `json:"experienceScore"`
	KeywordsScore   *int                 `json:"keywordsScore"`
	MatchedKeywords []string             `json:"matchedKeywords"`
	MissingKeywords []string             `json:"missingKeywords"`
	Suggestions     []providerSuggestion `json:"suggestions"`
}

type providerSuggestion struct {
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// parseProviderResponse locates the first JSON object in a provider response
// and coerces it into the typed analysis model. Providers often wrap the
// JSON in prose or markdown fences, so everything outside the outermost
// braces is discarded. Any structural mismatch is a parse failure, which the
// caller treats the same as no response at all.
func parseProviderResponse(response string) (*models.AnalysisResult, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON object found in provider response")
	}

	var parsed providerAnalysis
	if err := json.Unmarshal([]byte(response[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse provider response: %w", err)
	}

	suggestions := make([]models.Suggestion, 0, len(parsed.Suggestions))
	for _, s := range parsed.Suggestions {
		suggestions = append(suggestions, models.Suggestion{
			Category:    models.ParseSuggestionCategory(s.Category),
			Priority:    models.ParseSuggestionPriority(s.Priority),
			Title:       utils.GetStringOrDefault(s.Title, "Suggestion"),
			Description: s.Description,
			Action:      s.Action,
		})
	}

	return &models.AnalysisResult{
		Score: models.CompatibilityScore{
			Overall:    scoreOrDefault(parsed.OverallScore),
			Skills:     scoreOrDefault(parsed.SkillsScore),
			Experience: scoreOrDefault(parsed.ExperienceScore),
			Keywords:   scoreOrDefault(parsed.KeywordsScore),
		},
		Suggestions:     suggestions,
		MatchedKeywords: emptyIfNil(parsed.MatchedKeywords),
		MissingKeywords: emptyIfNil(parsed.MissingKeywords),
	}, nil
}

// scoreOrDefault defaults absent scores to 50 and clamps the rest to [0,100]
func scoreOrDefault(v *int) int {
	if v == nil {
		return 50
	}
	return models.ClampScore(*v)
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
