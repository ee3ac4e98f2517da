// Package cache maps content fingerprints of (resume, job) pairs to
// previously computed analysis results. Cache availability must never affect
// correctness: every backend treats its own failures as misses.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"arigatoo-utils/pkg/models"
	"arigatoo-utils/pkg/utils"
)

// DefaultTTL is how long a cached analysis stays valid
const DefaultTTL = time.Hour

// fingerprintLength bounds how much of each document feeds the fingerprint.
// Edits past this point reuse the cached result; that staleness is accepted.
const fingerprintLength = 500

// Store is the interface shared by the remote and in-process backends
type Store interface {
	// Get returns the cached result for key, or false on a miss. Backend
	// failures read as misses.
	Get(ctx context.Context, key string) (*models.AnalysisResult, bool)

	// Set stores the result under key for ttl. Backend failures are
	// swallowed and logged.
	Set(ctx context.Context, key string, result *models.AnalysisResult, ttl time.Duration)

	// IsAvailable reports whether the backend is reachable
	IsAvailable() bool
}

// Key derives the content fingerprint for a resume/job text pair
func Key(resumeText, jobText string) string {
	content := fmt.Sprintf("%s-%s", utils.Truncate(resumeText, fingerprintLength), utils.Truncate(jobText, fingerprintLength))
	digest := sha256.Sum256([]byte(content))
	return fmt.Sprintf("analysis:%s", hex.EncodeToString(digest[:]))
}
