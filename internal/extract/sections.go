package extract

import "strings"

const maxSectionEntries = 15

// ExtractRequirements collects the lines of the requirements/qualifications
// section of a job description
func ExtractRequirements(text string) []string {
	return scanSection(text,
		[]string{"requirement", "qualification", "must have"},
		[]string{"responsibilit", "about us", "benefits"},
	)
}

// ExtractResponsibilities collects the lines of the responsibilities section
// of a job description
func ExtractResponsibilities(text string) []string {
	return scanSection(text,
		[]string{"responsibilit", "what you", "you will"},
		[]string{"requirement", "qualification", "benefits"},
	)
}

// scanSection walks the lines once, entering section mode on a line matching
// an enter marker and leaving on an exit marker. The header line itself is
// never collected; lines shorter than 11 characters are skipped.
func scanSection(text string, enterMarkers, exitMarkers []string) []string {
	entries := []string{}
	inSection := false

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)

		if containsAny(lower, enterMarkers) {
			inSection = true
			continue
		}
		if inSection && containsAny(lower, exitMarkers) {
			inSection = false
		}
		if inSection {
			if trimmed := strings.TrimSpace(line); len(trimmed) > 10 {
				entries = append(entries, trimmed)
			}
		}
	}

	if len(entries) > maxSectionEntries {
		entries = entries[:maxSectionEntries]
	}

	return entries
}

func containsAny(s string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
