// Package fetch retrieves job-description text from a posting URL. Network
// robustness beyond a bounded timeout is out of scope; the caller surfaces
// fetch failures as input errors, never retries.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"arigatoo-utils/internal/config"
	"arigatoo-utils/internal/logging"
)

// minSelectorContent is the minimum text length a selector hit must have to
// be trusted over the body fallback
const minSelectorContent = 200

// jobDescriptionSelectors are common containers for job posting text, tried
// in order
var jobDescriptionSelectors = []string{
	"[data-testid=\"job-description\"]",
	".job-description",
	".description",
	"#job-description",
	"article",
	"main",
	".content",
}

var whitespaceRun = regexp.MustCompile(`[ \t]+`)

// Fetcher downloads and extracts job description text from web pages
type Fetcher struct {
	client    *http.Client
	userAgent string
	maxBody   int64
	logger    logging.Logger
}

// NewFetcher creates a fetcher with the configured timeout and body limit
func NewFetcher(cfg *config.Config) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: cfg.Fetcher.RequestTimeout,
		},
		userAgent: cfg.Fetcher.UserAgent,
		maxBody:   cfg.Fetcher.MaxBodySize,
		logger:    logging.GetGlobalLogger(),
	}
}

// FetchJobDescription downloads the page at url and returns its job
// description text
func (f *Fetcher) FetchJobDescription(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("invalid job posting URL: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("job posting fetch returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody))
	if err != nil {
		return "", fmt.Errorf("failed to read job posting body: %w", err)
	}

	text, err := ExtractText(string(body))
	if err != nil {
		return "", err
	}

	f.logger.Debug("Job posting fetched", map[string]interface{}{
		"url":         url,
		"text_length": len(text),
	})

	return text, nil
}

// ExtractText pulls the job description text out of raw HTML: strip
// scripts and chrome, try the common selectors, fall back to body text
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse job posting HTML: %w", err)
	}

	doc.Find("script, style, nav, header, footer").Remove()

	for _, selector := range jobDescriptionSelectors {
		content := strings.TrimSpace(doc.Find(selector).First().Text())
		if len(content) > minSelectorContent {
			return cleanText(content), nil
		}
	}

	return cleanText(doc.Find("body").Text()), nil
}

// cleanText collapses runs of spaces and blank lines
func cleanText(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(whitespaceRun.ReplaceAllString(line, " "))
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
