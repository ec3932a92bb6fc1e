package driving

import (
	"context"

	"github.com/custodia-labs/leetlens/internal/core/domain"
)

// MatchService finds catalog problems that match page content.
type MatchService interface {
	// FindMatches scores pageText against the loaded catalog using the
	// configured threshold, or opts.Threshold when set.
	FindMatches(ctx context.Context, pageText string, opts domain.MatchOptions) (*domain.MatchReport, error)

	// FindMatchesForURL scrapes the page at url and matches its content.
	FindMatchesForURL(ctx context.Context, url string, opts domain.MatchOptions) (*domain.MatchReport, error)
}
