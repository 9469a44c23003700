package registry

import (
	"context"
	"sort"
	"sync"
)

// InMemoryStore keeps the registry testable without a database. It
// intentionally favors clarity over performance.
type InMemoryStore struct {
	mu      sync.RWMutex
	batches map[string]Batch
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{batches: make(map[string]Batch)}
}

func (s *InMemoryStore) FindByCode(_ context.Context, batchCode string) (*Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if batch, ok := s.batches[batchCode]; ok {
		return &batch, nil
	}
	return nil, ErrNotFound
}

func (s *InMemoryStore) Save(_ context.Context, batch *Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches[batch.BatchCode] = *batch
	return nil
}

func (s *InMemoryStore) List(_ context.Context) ([]*Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	batches := make([]*Batch, 0, len(s.batches))
	for _, batch := range s.batches {
		b := batch
		batches = append(batches, &b)
	}
	sort.Slice(batches, func(i, j int) bool {
		return batches[i].BatchCode < batches[j].BatchCode
	})
	return batches, nil
}
