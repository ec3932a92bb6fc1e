package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/leetlens/internal/core/domain"
)

// mockCatalogSource implements driven.CatalogSource for testing.
type mockCatalogSource struct {
	name     string
	problems []domain.Problem
	err      error
	calls    int
}

func (m *mockCatalogSource) Name() string { return m.name }

func (m *mockCatalogSource) Fetch(_ context.Context) ([]domain.Problem, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.problems, nil
}

// failingCatalogStore implements driven.CatalogStore and fails every call.
type failingCatalogStore struct{}

var errStoreDown = errors.New("store down")

func (failingCatalogStore) Load(_ context.Context) ([]domain.Problem, error) {
	return nil, errStoreDown
}

func (failingCatalogStore) Save(_ context.Context, _ []domain.Problem) error {
	return errStoreDown
}

func (failingCatalogStore) Count(_ context.Context) (int, error) {
	return 0, errStoreDown
}

// failingConfigStore implements driven.ConfigStore and rejects writes.
type failingConfigStore struct{}

func (failingConfigStore) Get(_ string) (any, bool) { return nil, false }
func (failingConfigStore) GetString(_ string) string { return "" }
func (failingConfigStore) GetInt(_ string) int { return 0 }
func (failingConfigStore) GetFloat(_ string) float64 { return 0 }
func (failingConfigStore) GetBool(_ string) bool { return false }
func (failingConfigStore) Set(_ string, _ any) error { return errStoreDown }
func (failingConfigStore) Save() error { return errStoreDown }
func (failingConfigStore) Load() error { return nil }
func (failingConfigStore) Path() string { return "" }

// mockScraper implements driven.PageScraper for testing.
type mockScraper struct {
	content string
	err     error
	gotURL  string
}

func (m *mockScraper) Scrape(_ context.Context, url string) (string, error) {
	m.gotURL = url
	return m.content, m.err
}

// blockingCatalog implements driving.CatalogService and blocks in Problems
// until released, so a second concurrent search can be attempted.
type blockingCatalog struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newBlockingCatalog() *blockingCatalog {
	return &blockingCatalog{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (b *blockingCatalog) Problems(_ context.Context) ([]domain.Problem, error) {
	b.once.Do(func() { close(b.entered) })
	<-b.release
	return nil, nil
}

func (b *blockingCatalog) Count(_ context.Context) (int, error) { return 0, nil }

func (b *blockingCatalog) Refresh(_ context.Context) (int, error) { return 0, nil }

func (b *blockingCatalog) Replace(_ context.Context, _ []domain.Problem) error { return nil }

func sampleProblems() []domain.Problem {
	return []domain.Problem{
		{
			Title:       "Two Sum",
			Description: "Given an array of integers nums and an integer target, return indices of the two numbers.",
			Difficulty:  domain.DifficultyEasy,
			Topics:      []string{"Array", "Hash Table"},
		},
		{
			Title:       "Reverse Linked List",
			Description: "Given the head of a singly linked list, reverse the list.",
			Difficulty:  domain.DifficultyEasy,
			Topics:      []string{"Linked List"},
		},
	}
}
