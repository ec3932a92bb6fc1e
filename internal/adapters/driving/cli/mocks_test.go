package cli

import (
	"context"
	"sync"

	"github.com/custodia-labs/leetlens/internal/core/domain"
	"github.com/custodia-labs/leetlens/internal/core/ports/driven"
)

// mockMatchService implements driving.MatchService.
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
	return m.result()
}

func (m *mockMatchService) FindMatchesForURL(
	_ context.Context, url string, opts domain.MatchOptions,
) (*domain.MatchReport, error) {
	m.gotURL = url
	m.gotOpts = opts
	return m.result()
}

func (m *mockMatchService) result() (*domain.MatchReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.report == nil {
		return &domain.MatchReport{Threshold: domain.DefaultThreshold, Matches: []domain.MatchResult{}}, nil
	}
	return m.report, nil
}

// mockCatalogService implements driving.CatalogService.
type mockCatalogService struct {
	mu       sync.Mutex
	problems []domain.Problem
	err      error
	replaced int
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
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.problems = problems
	m.replaced++
	return nil
}

func (m *mockCatalogService) replaceCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.replaced
}

// mockSettingsService implements driving.SettingsService.
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
	if err := domain.ValidateThreshold(value); err != nil {
		return err
	}
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

// mockWatcher implements driven.Watcher and fires onChange on demand.
type mockWatcher struct {
	mu       sync.Mutex
	path     string
	onChange func(string)
	err      error
	closed   bool
	opened   int
	watching chan struct{}
}

func newMockWatcher() *mockWatcher {
	return &mockWatcher{watching: make(chan struct{})}
}

func (w *mockWatcher) Watch(path string, onChange func(string)) error {
	if w.err != nil {
		return w.err
	}
	w.mu.Lock()
	w.path = path
	w.onChange = onChange
	w.mu.Unlock()
	close(w.watching)
	return nil
}

func (w *mockWatcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

// factory hands out w and counts how often it was asked for.
func (w *mockWatcher) factory() func() (driven.Watcher, error) {
	return func() (driven.Watcher, error) {
		w.mu.Lock()
		defer w.mu.Unlock()
		w.opened++
		return w, nil
	}
}

func (w *mockWatcher) fire() {
	w.mu.Lock()
	fn, path := w.onChange, w.path
	w.mu.Unlock()
	fn(path)
}

// testServices holds the mocks installed by setupTestServices.
type testServices struct {
	match    *mockMatchService
	catalog  *mockCatalogService
	settings *mockSettingsService
}

// setupTestServices installs fresh mocks and returns a cleanup func.
func setupTestServices() (*testServices, func()) {
	ts := &testServices{
		match: &mockMatchService{},
		catalog: &mockCatalogService{problems: []domain.Problem{
			{Title: "Two Sum"}, {Title: "Reverse Linked List"},
		}},
		settings: &mockSettingsService{settings: domain.DefaultSettings()},
	}

	oldMatch, oldCatalog, oldSettings := matchService, catalogService, settingsService
	oldWatcher, oldPath := newWatcher, catalogPath
	SetServices(Services{Match: ts.match, Catalog: ts.catalog, Settings: ts.settings})

	return ts, func() {
		matchService, catalogService, settingsService = oldMatch, oldCatalog, oldSettings
		newWatcher, catalogPath = oldWatcher, oldPath
	}
}
