// Package extract turns raw resume and job-description text into structured
// documents. Every function here is deterministic and total: absent signals
// yield empty values, never errors.
package extract

import (
	"regexp"
	"strings"
	"time"

	"arigatoo-utils/pkg/models"
)

var (
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRegex = regexp.MustCompile(`(\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	digitRun   = regexp.MustCompile(`\d{3}`)

	// City, ST or City, Country shaped tokens
	locationRegexes = []*regexp.Regexp{
		regexp.MustCompile(`[A-Z][a-z]+,?\s*[A-Z]{2}`),
		regexp.MustCompile(`[A-Z][a-z]+,\s*[A-Z][a-z]+`),
	}
)

// ExtractResumeData extracts structured fields from raw resume text
func ExtractResumeData(text string) *models.ParsedResume {
	lines := nonEmptyLines(text)

	return &models.ParsedResume{
		RawText:    text,
		Name:       extractName(lines),
		Email:      extractEmail(text),
		Phone:      extractPhone(text),
		Location:   extractLocation(lines),
		Skills:     ExtractSkills(text),
		Keywords:   ExtractKeywords(text),
		Experience: []models.Experience{},
		Education:  []models.Education{},
	}
}

// ExtractJobData extracts structured fields from raw job description text
func ExtractJobData(text, sourceURL string) *models.JobDescription {
	return &models.JobDescription{
		RawText:          text,
		SourceURL:        sourceURL,
		Requirements:     ExtractRequirements(text),
		Responsibilities: ExtractResponsibilities(text),
		Skills:           ExtractSkills(text),
		Keywords:         ExtractKeywords(text),
		CreatedAt:        time.Now(),
	}
}

// nonEmptyLines splits text into trimmed, non-empty lines
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// extractName picks the first of the leading lines that looks like a person's
// name: short, no email marker, no 3+ digit run
func extractName(lines []string) string {
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}

	for _, line := range lines[:limit] {
		if len(line) > 2 && len(line) < 50 && !strings.Contains(line, "@") && !digitRun.MatchString(line) {
			return line
		}
	}
	return ""
}

// extractEmail returns the first email-shaped substring
func extractEmail(text string) string {
	return emailRegex.FindString(text)
}

// extractPhone returns the first North-American-style phone number
func extractPhone(text string) string {
	return phoneRegex.FindString(text)
}

// extractLocation scans the first 10 lines for a City, ST shaped token
func extractLocation(lines []string) string {
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}

	for _, line := range lines[:limit] {
		for _, re := range locationRegexes {
			if match := re.FindString(line); match != "" {
				return match
			}
		}
	}
	return ""
}
