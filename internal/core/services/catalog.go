package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/leetlens/internal/core/domain"
	"github.com/custodia-labs/leetlens/internal/core/ports/driven"
	"github.com/custodia-labs/leetlens/internal/core/ports/driving"
	"github.com/custodia-labs/leetlens/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService loads the catalog once per session and keeps it in memory.
//
// Load order: the cached store first, then each source in turn. A catalog
// fetched from a source is written back to the store.
type CatalogService struct {
	mu       sync.RWMutex
	store    driven.CatalogStore
	sources  []driven.CatalogSource
	problems []domain.Problem
	loaded   bool
}

// NewCatalogService creates a catalog service.
// The store may be nil, in which case nothing is cached.
func NewCatalogService(store driven.CatalogStore, sources ...driven.CatalogSource) *CatalogService {
	return &CatalogService{
		store:   store,
		sources: sources,
	}
}

// Problems returns the catalog, loading it on first use.
// The returned slice is shared and must be treated as read-only.
// If every source fails the result is empty and the next call retries.
func (s *CatalogService) Problems(ctx context.Context) ([]domain.Problem, error) {
	s.mu.RLock()
	if s.loaded {
		problems := s.problems
		s.mu.RUnlock()
		return problems, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.problems, nil
	}

	if err := s.load(ctx, true); err != nil {
		logger.Warn("Failed to load catalog: %v", err)
		return []domain.Problem{}, nil
	}
	return s.problems, nil
}

// Count returns the number of problems. It answers from memory, then from
// the store, and only loads the catalog when neither knows.
func (s *CatalogService) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	if s.loaded {
		n := len(s.problems)
		s.mu.RUnlock()
		return n, nil
	}
	s.mu.RUnlock()

	if s.store != nil {
		n, err := s.store.Count(ctx)
		if err != nil {
			logger.Warn("Counting cached catalog failed: %v", err)
		} else if n > 0 {
			return n, nil
		}
	}

	problems, err := s.Problems(ctx)
	if err != nil {
		return 0, err
	}
	return len(problems), nil
}

// Refresh reloads the catalog from its sources, skipping the cache.
func (s *CatalogService) Refresh(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx, false); err != nil {
		return 0, err
	}
	return len(s.problems), nil
}

// Replace swaps in a new catalog and persists it.
func (s *CatalogService) Replace(ctx context.Context, problems []domain.Problem) error {
	if problems == nil {
		problems = []domain.Problem{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Save(ctx, problems); err != nil {
			return fmt.Errorf("save catalog: %w", err)
		}
	}
	s.problems = problems
	s.loaded = true
	logger.Info("Catalog replaced: %d problems", len(problems))
	return nil
}

// load fills s.problems (caller must hold the write lock).
func (s *CatalogService) load(ctx context.Context, useCache bool) error {
	logger.Section("Catalog Load")

	if useCache && s.store != nil {
		cached, err := s.store.Load(ctx)
		switch {
		case err != nil:
			logger.Warn("Reading cached catalog failed: %v", err)
		case len(cached) > 0:
			s.problems = cached
			s.loaded = true
			logger.Info("Loaded catalog from cache: %d problems", len(cached))
			return nil
		default:
			logger.Debug("Catalog cache is empty")
		}
	}

	for _, src := range s.sources {
		logger.Debug("Fetching catalog from %s", src.Name())
		problems, err := src.Fetch(ctx)
		if err != nil {
			logger.Warn("Catalog source %s failed: %v", src.Name(), err)
			continue
		}
		if problems == nil {
			problems = []domain.Problem{}
		}

		s.problems = problems
		s.loaded = true
		logger.Info("Loaded catalog from %s: %d problems", src.Name(), len(problems))

		if s.store != nil {
			if err := s.store.Save(ctx, problems); err != nil {
				logger.Warn("Caching catalog failed: %v", err)
			}
		}
		return nil
	}

	return fmt.Errorf("%w: no source produced a catalog", domain.ErrCatalogUnavailable)
}
