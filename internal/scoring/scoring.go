// Package scoring computes a deterministic compatibility score between a
// resume and a job description. It is the fallback analysis path when no
// generative provider is reachable, and a cross-check for provider output.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"arigatoo-utils/pkg/models"
)

// neutralScore is used when the job side carries no signal for a dimension,
// so a sparse job description neither rewards nor penalizes the resume.
const neutralScore = 50

const maxSuggestionItems = 5

// Result holds the outcome of a deterministic scoring pass
type Result struct {
	Score           models.CompatibilityScore
	Suggestions     []models.Suggestion
	MatchedKeywords []string
	MissingKeywords []string
}

// Score compares a resume against a job description using case-insensitive
// set overlap of keywords and skills. Pure and total: any input combination
// yields a valid result.
func Score(resume *models.ParsedResume, job *models.JobDescription) *Result {
	matchedKeywords, missingKeywords := matchLower(job.Keywords, resume.Keywords)
	matchedSkills, missingSkills := matchCanonical(job.Skills, resume.Skills)

	keywordsScore := ratioScore(len(matchedKeywords), len(matchedKeywords)+len(missingKeywords))
	skillsScore := ratioScore(len(matchedSkills), len(matchedSkills)+len(missingSkills))
	// No structured experience heuristic exists without AI
	experienceScore := neutralScore
	overallScore := roundMean(keywordsScore, skillsScore, experienceScore)

	suggestions := []models.Suggestion{}

	if len(missingSkills) > 0 {
		suggestions = append(suggestions, models.Suggestion{
			Category:    models.CategorySkills,
			Priority:    models.PriorityHigh,
			Title:       "Add Missing Skills",
			Description: fmt.Sprintf("Consider adding: %s", strings.Join(truncateList(missingSkills), ", ")),
			Action:      "Update your skills section",
		})
	}

	if len(missingKeywords) > 0 {
		suggestions = append(suggestions, models.Suggestion{
			Category:    models.CategoryKeywords,
			Priority:    models.PriorityMedium,
			Title:       "Include Industry Keywords",
			Description: fmt.Sprintf("Missing: %s", strings.Join(truncateList(missingKeywords), ", ")),
			Action:      "Incorporate these terms naturally",
		})
	}

	return &Result{
		Score: models.CompatibilityScore{
			Overall:    overallScore,
			Skills:     skillsScore,
			Experience: experienceScore,
			Keywords:   keywordsScore,
		},
		Suggestions:     suggestions,
		MatchedKeywords: matchedKeywords,
		MissingKeywords: missingKeywords,
	}
}

// matchLower partitions job terms into matched and missing against the
// resume terms, comparing and returning lowercase forms. Job order is
// preserved and duplicates collapse.
func matchLower(jobTerms, resumeTerms []string) (matched, missing []string) {
	resumeSet := lowerSet(resumeTerms)

	matched = []string{}
	missing = []string{}
	seen := make(map[string]bool)
	for _, term := range jobTerms {
		lower := strings.ToLower(term)
		if seen[lower] {
			continue
		}
		seen[lower] = true

		if resumeSet[lower] {
			matched = append(matched, lower)
		} else {
			missing = append(missing, lower)
		}
	}
	return matched, missing
}

// matchCanonical partitions job skills like matchLower but keeps the job
// side's original casing, so suggestions can show canonical vocabulary names.
func matchCanonical(jobTerms, resumeTerms []string) (matched, missing []string) {
	resumeSet := lowerSet(resumeTerms)

	matched = []string{}
	missing = []string{}
	seen := make(map[string]bool)
	for _, term := range jobTerms {
		lower := strings.ToLower(term)
		if seen[lower] {
			continue
		}
		seen[lower] = true

		if resumeSet[lower] {
			matched = append(matched, term)
		} else {
			missing = append(missing, term)
		}
	}
	return matched, missing
}

func lowerSet(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, term := range terms {
		set[strings.ToLower(term)] = true
	}
	return set
}

// ratioScore converts a matched/total ratio into a 0-100 score, defaulting
// to neutral when the job side is empty
func ratioScore(matched, total int) int {
	if total == 0 {
		return neutralScore
	}
	return int(math.Round(float64(matched) / float64(total) * 100))
}

func roundMean(scores ...int) int {
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return int(math.Round(float64(sum) / float64(len(scores))))
}

func truncateList(items []string) []string {
	if len(items) > maxSuggestionItems {
		return items[:maxSuggestionItems]
	}
	return items
}
