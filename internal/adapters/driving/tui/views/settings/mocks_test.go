package settings

import (
	"context"

	"github.com/custodia-labs/leetlens/internal/core/domain"
)

type mockSettingsService struct {
	settings domain.Settings
	err      error
}

func (m *mockSettingsService) Get() (domain.Settings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Threshold() float64 {
	return m.settings.Threshold
}

func (m *mockSettingsService) SetThreshold(value float64) error {
	if m.err != nil {
		return m.err
	}
	m.settings.Threshold = value
	return nil
}

func (m *mockSettingsService) ToggleVisibility() (bool, error) {
	if m.err != nil {
		return m.settings.Visible, m.err
	}
	m.settings.Visible = !m.settings.Visible
	return m.settings.Visible, nil
}

func (m *mockSettingsService) RecordResultCount(n int) error {
	m.settings.LastResultCount = n
	return m.err
}

type mockCatalogService struct {
	count int
	err   error
}

func (m *mockCatalogService) Problems(_ context.Context) ([]domain.Problem, error) {
	return make([]domain.Problem, m.count), m.err
}

func (m *mockCatalogService) Count(_ context.Context) (int, error) {
	return m.count, m.err
}

func (m *mockCatalogService) Refresh(_ context.Context) (int, error) {
	return m.count, m.err
}

func (m *mockCatalogService) Replace(_ context.Context, problems []domain.Problem) error {
	m.count = len(problems)
	return m.err
}
