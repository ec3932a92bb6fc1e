package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/leetlens/internal/core/domain"
	"github.com/custodia-labs/leetlens/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is an in-memory implementation of driven.CatalogStore.
type CatalogStore struct {
	mu       sync.RWMutex
	problems []domain.Problem
	saves    int
}

// NewCatalogStore creates a catalog store, optionally pre-filled.
func NewCatalogStore(problems ...domain.Problem) *CatalogStore {
	return &CatalogStore{problems: cloneProblems(problems)}
}

// Load returns a copy of the stored problems.
func (s *CatalogStore) Load(_ context.Context) ([]domain.Problem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProblems(s.problems), nil
}

// Save replaces the stored problems.
func (s *CatalogStore) Save(_ context.Context, problems []domain.Problem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.problems = cloneProblems(problems)
	s.saves++
	return nil
}

// Count returns the number of stored problems.
func (s *CatalogStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.problems), nil
}

// Saves returns how many times Save has been called.
func (s *CatalogStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

func cloneProblems(problems []domain.Problem) []domain.Problem {
	out := make([]domain.Problem, len(problems))
	for i := range problems {
		out[i] = problems[i].Clone()
	}
	return out
}
