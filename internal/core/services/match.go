package services

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/custodia-labs/leetlens/internal/core/domain"
	"github.com/custodia-labs/leetlens/internal/core/ports/driven"
	"github.com/custodia-labs/leetlens/internal/core/ports/driving"
	"github.com/custodia-labs/leetlens/internal/logger"
	"github.com/custodia-labs/leetlens/internal/matcher"
)

// Ensure MatchService implements the interface.
var _ driving.MatchService = (*MatchService)(nil)

// MatchService runs searches for one session.
//
// It supplies the matcher with the session's catalog and threshold and
// rejects a search while another is still running.
type MatchService struct {
	catalog  driving.CatalogService
	settings driving.SettingsService
	scraper  driven.PageScraper

	searching atomic.Bool
}

// NewMatchService creates a match service.
func NewMatchService(catalog driving.CatalogService, settings driving.SettingsService) *MatchService {
	return &MatchService{
		catalog:  catalog,
		settings: settings,
	}
}

// SetScraper sets the page scraper used by FindMatchesForURL.
func (s *MatchService) SetScraper(scraper driven.PageScraper) {
	s.scraper = scraper
}

// FindMatches scores pageText against the catalog.
func (s *MatchService) FindMatches(
	ctx context.Context, pageText string, opts domain.MatchOptions,
) (*domain.MatchReport, error) {
	if !s.searching.CompareAndSwap(false, true) {
		return nil, domain.ErrSearchInProgress
	}
	defer s.searching.Store(false)

	return s.run(ctx, pageText, opts)
}

// FindMatchesForURL scrapes url and scores its content against the catalog.
func (s *MatchService) FindMatchesForURL(
	ctx context.Context, url string, opts domain.MatchOptions,
) (*domain.MatchReport, error) {
	if s.scraper == nil {
		return nil, fmt.Errorf("%w: no page scraper configured", domain.ErrScrapeFailed)
	}
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("%w: empty url", domain.ErrInvalidInput)
	}
	if !s.searching.CompareAndSwap(false, true) {
		return nil, domain.ErrSearchInProgress
	}
	defer s.searching.Store(false)

	content, err := s.scraper.Scrape(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("scrape %s: %w", url, err)
	}
	return s.run(ctx, content, opts)
}

func (s *MatchService) run(ctx context.Context, pageText string, opts domain.MatchOptions) (*domain.MatchReport, error) {
	id := uuid.NewString()
	log := logger.WithID(id[:8])

	logger.Section("Match Execution")
	log.Debug("Finding matches for: %q", preview(pageText, 100))

	threshold := s.settings.Threshold()
	if opts.Threshold != nil {
		threshold = *opts.Threshold
	}
	log.Debug("Threshold: %.2f", threshold)

	problems, err := s.catalog.Problems(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	log.Debug("Checking %d problems", len(problems))

	matches := matcher.FindMatches(pageText, problems, threshold)
	log.Info("Found %d unique matches", len(matches))

	if err := s.settings.RecordResultCount(len(matches)); err != nil {
		log.Warn("Recording result count failed: %v", err)
	}

	return &domain.MatchReport{
		ID:          id,
		Threshold:   threshold,
		CatalogSize: len(problems),
		Matches:     matches,
	}, nil
}

// preview shortens text for log lines.
func preview(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}
