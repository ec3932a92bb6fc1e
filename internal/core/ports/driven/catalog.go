package driven

import (
	"context"

	"github.com/custodia-labs/leetlens/internal/core/domain"
)

// CatalogStore caches the catalog between sessions.
type CatalogStore interface {
	// Load returns the cached problems in catalog order.
	// An empty cache returns an empty slice and no error.
	Load(ctx context.Context) ([]domain.Problem, error)

	// Save replaces the cached catalog.
	Save(ctx context.Context, problems []domain.Problem) error

	// Count returns the number of cached problems.
	Count(ctx context.Context) (int, error)
}

// CatalogSource produces a catalog from an authoritative location.
type CatalogSource interface {
	// Name identifies the source in logs.
	Name() string

	// Fetch returns the problems in catalog order.
	Fetch(ctx context.Context) ([]domain.Problem, error)
}
