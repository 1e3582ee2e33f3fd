package store

import (
	"context"
	"sync"

	"bizfinder/internal/models"
)

// MemoryStore keeps the known-ID set in process memory. State is lost on exit.
type MemoryStore struct {
	mu    sync.Mutex
	ids   models.IDSet
	saves int
}

// NewMemoryStore creates a store seeded with ids.
func NewMemoryStore(ids ...int64) *MemoryStore {
	return &MemoryStore{ids: models.NewIDSet(ids...)}
}

// Load returns a copy of the stored set.
func (s *MemoryStore) Load(_ context.Context) (models.IDSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids.Merge(nil), nil
}

// Save replaces the stored set with a copy of ids.
func (s *MemoryStore) Save(_ context.Context, ids models.IDSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = ids.Merge(nil)
	s.saves++
	return nil
}

// Saves returns how many times Save has been called.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
