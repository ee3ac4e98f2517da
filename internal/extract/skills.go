package extract

import "strings"

// skillVocabulary is the fixed reference vocabulary of technology and role
// terms. Matching is a case-insensitive substring scan; results keep this
// canonical casing and this iteration order.
var skillVocabulary = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Ruby", "Go", "Rust", "PHP",
	"React", "Angular", "Vue", "Next.js", "Node.js", "Express", "NestJS", "Django", "Flask",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD", "Git", "GitHub",
	"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Firebase", "GraphQL",
	"HTML", "CSS", "Sass", "Tailwind", "Bootstrap",
	"REST", "API", "Microservices", "Agile", "Scrum",
	"Machine Learning", "AI", "Data Science", "TensorFlow", "PyTorch",
}

// ExtractSkills returns the vocabulary terms found in the text, deduplicated,
// in vocabulary order
func ExtractSkills(text string) []string {
	lowerText := strings.ToLower(text)

	found := []string{}
	seen := make(map[string]bool)
	for _, skill := range skillVocabulary {
		lower := strings.ToLower(skill)
		if seen[lower] {
			continue
		}
		if strings.Contains(lowerText, lower) {
			found = append(found, skill)
			seen[lower] = true
		}
	}

	return found
}
