package driving

import (
	"context"

	"github.com/custodia-labs/leetlens/internal/core/domain"
)

// CatalogService owns the problem catalog for a session.
type CatalogService interface {
	// Problems returns the catalog, loading it on first use.
	Problems(ctx context.Context) ([]domain.Problem, error)

	// Count returns the number of problems without forcing a full reload.
	Count(ctx context.Context) (int, error)

	// Refresh reloads the catalog from its sources, bypassing the cache.
	Refresh(ctx context.Context) (int, error)

	// Replace swaps in a new catalog and persists it.
	Replace(ctx context.Context, problems []domain.Problem) error
}
