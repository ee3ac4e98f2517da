package cache

import (
	"context"
	"sync"
	"time"

	"arigatoo-utils/pkg/models"
)

// memoryEntry pairs a cached result with its expiry time
type memoryEntry struct {
	result    *models.AnalysisResult
	expiresAt time.Time
}

// MemoryStore is the in-process fallback backend used when Redis is
// unreachable or unconfigured. Concurrent reads and inserts are safe; racing
// writers on the same key compute equivalent results, so last-write-wins is
// acceptable.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryStore creates an empty in-process store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
	}
}

// Get returns the cached result for key if present and unexpired
func (s *MemoryStore) Get(_ context.Context, key string) (*models.AnalysisResult, bool) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false
	}

	return entry.result, true
}

// Set stores the result under key for ttl
func (s *MemoryStore) Set(_ context.Context, key string, result *models.AnalysisResult, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{
		result:    result,
		expiresAt: time.Now().Add(ttl),
	}
}

// IsAvailable always reports true for the in-process store
func (s *MemoryStore) IsAvailable() bool {
	return true
}
