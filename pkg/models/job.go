package models

import "time"

// JobDescription represents a structured job posting to analyze a resume against
type JobDescription struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	Company   string `json:"company,omitempty"`
	Location  string `json:"location,omitempty"`
	SourceURL string `json:"sourceUrl,omitempty"`
	RawText   string `json:"rawText" validate:"required"`
	// Requirements and Responsibilities hold source lines, at most 15 each
	Requirements     []string  `json:"requirements"`
	Responsibilities []string  `json:"responsibilities"`
	Skills           []string  `json:"skills"`
	Keywords         []string  `json:"keywords"`
	CreatedAt        time.Time `json:"createdAt"`
}
