package scanlog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryStore keeps scan entries in insertion order for tests and local runs.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, entry *Entry) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = uuid.New()
	entry.Timestamp = time.Now().UTC()
	s.entries = append(s.entries, *entry)
	return entry.ID, nil
}

func (s *InMemoryStore) ListRecent(_ context.Context, limit int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit < 0 {
		limit = 0
	}
	if limit > len(s.entries) {
		limit = len(s.entries)
	}
	// Newest first; the slice is already in insertion order.
	recent := make([]Entry, 0, limit)
	for i := len(s.entries) - 1; i >= len(s.entries)-limit; i-- {
		recent = append(recent, s.entries[i])
	}
	return recent, nil
}

func (s *InMemoryStore) Aggregate(_ context.Context) (Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summary := Summary{Total: len(s.entries)}
	for _, entry := range s.entries {
		if entry.Status == "FAKE" {
			summary.Fake++
		}
	}
	return summary, nil
}

// Len reports the current log size. Test helper.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
