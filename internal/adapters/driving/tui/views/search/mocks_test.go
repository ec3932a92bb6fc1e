package search

import (
	"context"

	"github.com/custodia-labs/leetlens/internal/core/domain"
)

type mockMatchService struct {
	report  *domain.MatchReport
	err     error
	gotText string
	calls   int
}

func (m *mockMatchService) FindMatches(
	_ context.Context, pageText string, _ domain.MatchOptions,
) (*domain.MatchReport, error) {
	m.calls++
	m.gotText = pageText
	return m.report, m.err
}

func (m *mockMatchService) FindMatchesForURL(
	_ context.Context, _ string, _ domain.MatchOptions,
) (*domain.MatchReport, error) {
	return m.report, m.err
}
