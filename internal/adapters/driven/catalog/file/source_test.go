package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/leetlens/internal/core/domain"
)

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestSource_Fetch(t *testing.T) {
	path := writeCatalog(t, "leetcode-data.json", `[{"title": "Two Sum"}, {"title": "Add Two Numbers"}]`)
	src := NewSource(path)

	problems, err := src.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, problems, 2)
	assert.Equal(t, "Add Two Numbers", problems[1].Title)
	assert.Equal(t, "file:"+path, src.Name())
	assert.Equal(t, path, src.Path())
}

func TestSource_Fetch_YAML(t *testing.T) {
	path := writeCatalog(t, "catalog.yml", "- title: Two Sum\n")

	problems, err := ReadFile(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, problems, 1)
}

func TestSource_Fetch_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewSource(filepath.Join(t.TempDir(), "nope.json")).Fetch(context.Background())
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("no path", func(t *testing.T) {
		_, err := NewSource("").Fetch(context.Background())
		assert.True(t, errors.Is(err, domain.ErrCatalogUnavailable))
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeCatalog(t, "empty.json", "")
		_, err := NewSource(path).Fetch(context.Background())
		assert.True(t, errors.Is(err, ErrEmptyCatalog))
	})

	t.Run("canceled context", func(t *testing.T) {
		path := writeCatalog(t, "ok.json", "[]")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewSource(path).Fetch(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
