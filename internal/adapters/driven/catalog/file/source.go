package file

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/leetlens/internal/core/domain"
	"github.com/custodia-labs/leetlens/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// Source loads the catalog from a file on disk.
type Source struct {
	path string
}

// NewSource creates a file catalog source.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Name identifies the source in logs.
func (s *Source) Name() string {
	return "file:" + s.path
}

// Path returns the catalog file path.
func (s *Source) Path() string {
	return s.path
}

// Fetch reads and decodes the file.
func (s *Source) Fetch(ctx context.Context) ([]domain.Problem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.path == "" {
		return nil, fmt.Errorf("%w: no catalog path configured", domain.ErrCatalogUnavailable)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.path, err)
	}

	problems, err := Decode(data, FormatFromPath(s.path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return problems, nil
}

// ReadFile is a convenience for one-off loads such as "catalog update".
func ReadFile(ctx context.Context, path string) ([]domain.Problem, error) {
	return NewSource(path).Fetch(ctx)
}
