package models

// ParsedResume represents the structured content extracted from a resume
type ParsedResume struct {
	RawText  string `json:"rawText" validate:"required"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Summary  string `json:"summary,omitempty"`
	// Skills keeps canonical vocabulary casing; matching is case-insensitive
	Skills []string `json:"skills"`
	// Keywords are frequency-ranked, most significant first
	Keywords   []string     `json:"keywords"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
}

// Experience represents a single work experience entry on a resume
type Experience struct {
	Company     string   `json:"company"`
	Title       string   `json:"title"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights"`
}

// Education represents a single education entry on a resume
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}
