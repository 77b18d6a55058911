// Package memory provides an in-memory AnalysisStore.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/aretw0/polish/pkg/domain"
)

// Store implements ports.AnalysisStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string][]byte),
	}
}

// Save persists the analysis in memory. Values are stored serialized so
// callers can never mutate stored state through a shared pointer.
func (s *Store) Save(ctx context.Context, id string, res *domain.Analysis) error {
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = data
	return nil
}

// Load retrieves the analysis from memory.
func (s *Store) Load(ctx context.Context, id string) (*domain.Analysis, error) {
	s.mu.RLock()
	data, ok := s.data[id]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrAnalysisNotFound
	}

	var res domain.Analysis
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Delete removes the analysis from memory.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}
