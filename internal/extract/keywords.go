package extract

import (
	"regexp"
	"sort"
	"strings"
)

const maxKeywords = 20

// stopWords are common words excluded from keyword extraction
var stopWords = map[string]bool{
	"that": true, "this": true, "with": true, "from": true, "have": true,
	"been": true, "were": true, "they": true, "will": true, "would": true,
	"could": true, "should": true, "about": true, "which": true, "their": true,
	"there": true, "these": true, "those": true, "being": true, "other": true,
}

var nonLetters = regexp.MustCompile(`[^a-z\s]`)

// ExtractKeywords returns the top 20 significant tokens ordered by descending
// frequency. Ties break on first occurrence in the text, which keeps the
// ranking stable across runs.
func ExtractKeywords(text string) []string {
	normalized := nonLetters.ReplaceAllString(strings.ToLower(text), " ")

	freq := make(map[string]int)
	firstSeen := make(map[string]int)

	for i, word := range strings.Fields(normalized) {
		if len(word) < 4 || stopWords[word] {
			continue
		}
		if _, ok := freq[word]; !ok {
			firstSeen[word] = i
		}
		freq[word]++
	}

	keywords := make([]string, 0, len(freq))
	for word := range freq {
		keywords = append(keywords, word)
	}

	sort.SliceStable(keywords, func(i, j int) bool {
		if freq[keywords[i]] != freq[keywords[j]] {
			return freq[keywords[i]] > freq[keywords[j]]
		}
		return firstSeen[keywords[i]] < firstSeen[keywords[j]]
	})

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}

	return keywords
}
