package models

import "time"

// SuggestionCategory classifies what part of the resume a suggestion targets
type SuggestionCategory string

const (
	CategorySkills     SuggestionCategory = "skills"
	CategoryExperience SuggestionCategory = "experience"
	CategoryKeywords   SuggestionCategory = "keywords"
	CategoryFormatting SuggestionCategory = "formatting"
	CategoryOther      SuggestionCategory = "other"
)

// ParseSuggestionCategory normalizes a provider-supplied category string.
// Unrecognized values map to CategoryOther.
func ParseSuggestionCategory(s string) SuggestionCategory {
	switch SuggestionCategory(s) {
	case CategorySkills, CategoryExperience, CategoryKeywords, CategoryFormatting, CategoryOther:
		return SuggestionCategory(s)
	default:
		return CategoryOther
	}
}

// SuggestionPriority indicates how impactful a suggestion is expected to be
type SuggestionPriority string

const (
	PriorityHigh   SuggestionPriority = "high"
	PriorityMedium SuggestionPriority = "medium"
	PriorityLow    SuggestionPriority = "low"
)

// ParseSuggestionPriority normalizes a provider-supplied priority string.
// Unrecognized values map to PriorityMedium.
func ParseSuggestionPriority(s string) SuggestionPriority {
	switch SuggestionPriority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return SuggestionPriority(s)
	default:
		return PriorityMedium
	}
}

// Suggestion represents a single improvement recommendation for a resume
type Suggestion struct {
	Category    SuggestionCategory `json:"category"`
	Priority    SuggestionPriority `json:"priority"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Action      string             `json:"action,omitempty"`
}

// CompatibilityScore holds the four 0-100 sub-scores of an analysis.
// Overall is the rounded mean of Skills, Experience and Keywords unless an
// AI-provided score overrides it.
type CompatibilityScore struct {
	Overall    int `json:"overall"`
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Keywords   int `json:"keywords"`
}

// AnalysisResult is the immutable outcome of a resume/job analysis.
// Its JSON shape is the external contract consumed by clients.
type AnalysisResult struct {
	ID               string             `json:"id"`
	ResumeID         string             `json:"resumeId"`
	JobDescriptionID string             `json:"jobDescriptionId"`
	Score            CompatibilityScore `json:"score"`
	Suggestions      []Suggestion       `json:"suggestions"`
	MatchedKeywords  []string           `json:"matchedKeywords"`
	MissingKeywords  []string           `json:"missingKeywords"`
	CreatedAt        time.Time          `json:"createdAt"`
}

// ClampScore bounds a score value into the valid [0,100] range
func ClampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
