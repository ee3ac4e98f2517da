package models

// ParseResumeRequest represents the request payload for parsing resume text
type ParseResumeRequest struct {
	Text string `json:"text" validate:"required"`
}

// ParseJobRequest represents the request payload for parsing a job description.
// Either raw text or a URL to fetch must be provided.
type ParseJobRequest struct {
	Text string `json:"text,omitempty"`
	URL  string `json:"url,omitempty" validate:"omitempty,url"`
}

// AnalyzeRequest represents the request payload for a compatibility analysis
type AnalyzeRequest struct {
	Resume *ParsedResume   `json:"resume" validate:"required"`
	Job    *JobDescription `json:"job" validate:"required"`
	// GeminiAPIKey lets extension guest-mode callers supply their own key
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
}
