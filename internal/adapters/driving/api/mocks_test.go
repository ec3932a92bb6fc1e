package api

import (
	"context"

	"github.com/custodia-labs/leetlens/internal/core/domain"
)

// mockMatchService is a mock implementation of driving.MatchService.
type mockMatchService struct {
	report  *domain.MatchReport
	err     error
	gotText string
	gotURL  string
	gotOpts domain.MatchOptions
}

func (m *mockMatchService) FindMatches(
	_ context.Context, pageText string, opts domain.MatchOptions,
) (*domain.MatchReport, error) {
	m.gotText = pageText
	m.gotOpts = opts
	return m.reportOrEmpty(), m.err
}

func (m *mockMatchService) FindMatchesForURL(
	_ context.Context, url string, opts domain.MatchOptions,
) (*domain.MatchReport, error) {
	m.gotURL = url
	m.gotOpts = opts
	return m.reportOrEmpty(), m.err
}

func (m *mockMatchService) reportOrEmpty() *domain.MatchReport {
	if m.err != nil {
		return nil
	}
	if m.report == nil {
		return &domain.MatchReport{Matches: []domain.MatchResult{}}
	}
	return m.report
}

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	problems []domain.Problem
	err      error
}

func (m *mockCatalogService) Problems(_ context.Context) ([]domain.Problem, error) {
	return m.problems, m.err
}

func (m *mockCatalogService) Count(_ context.Context) (int, error) {
	return len(m.problems), m.err
}

func (m *mockCatalogService) Refresh(_ context.Context) (int, error) {
	return len(m.problems), m.err
}

func (m *mockCatalogService) Replace(_ context.Context, problems []domain.Problem) error {
	m.problems = problems
	return m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	threshold float64
	visible   bool
	count     int
	err       error
}

func (m *mockSettingsService) Get() (domain.Settings, error) {
	return domain.Settings{Threshold: m.threshold, Visible: m.visible, LastResultCount: m.count}, m.err
}

func (m *mockSettingsService) Threshold() float64 {
	return m.threshold
}

func (m *mockSettingsService) SetThreshold(value float64) error {
	if err := domain.ValidateThreshold(value); err != nil {
		return err
	}
	if m.err != nil {
		return m.err
	}
	m.threshold = value
	return nil
}

func (m *mockSettingsService) ToggleVisibility() (bool, error) {
	m.visible = !m.visible
	return m.visible, m.err
}

func (m *mockSettingsService) RecordResultCount(n int) error {
	m.count = n
	return m.err
}
