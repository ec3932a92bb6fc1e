package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "leetlens")

	_, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewConfigStore_InvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not = [valid"), 0600))

	_, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("catalog.path", "/data/problems.json"))

	val, ok := store.Get("catalog.path")
	assert.True(t, ok)
	assert.Equal(t, "/data/problems.json", val)
	assert.Equal(t, "/data/problems.json", store.GetString("catalog.path"))

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_PersistsAsNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("matching.similarity_threshold", 0.6))
	require.NoError(t, store.Set("matching.last_result_count", 4))
	require.NoError(t, store.Set("display.visible", false))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[matching]")
	assert.Contains(t, string(raw), "similarity_threshold = 0.6")

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, reloaded.GetFloat("matching.similarity_threshold"), 1e-9)
	assert.Equal(t, 4, reloaded.GetInt("matching.last_result_count"))
	_, ok := reloaded.Get("display.visible")
	assert.True(t, ok)
	assert.False(t, reloaded.GetBool("display.visible"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("catalog.github.token", "secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_HandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[matching]
similarity_threshold = 1

[catalog.github]
owner = "leetlens"
repo = "dataset"
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, store.GetFloat("matching.similarity_threshold"), 1e-9)
	assert.Equal(t, "leetlens", store.GetString("catalog.github.owner"))
	assert.Equal(t, "dataset", store.GetString("catalog.github.repo"))
}

func TestConfigStore_TypeMismatch(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("display.visible", "yes"))

	assert.False(t, store.GetBool("display.visible"))
	assert.Zero(t, store.GetInt("display.visible"))
	assert.Zero(t, store.GetFloat("display.visible"))
	assert.Empty(t, store.GetString("missing"))
}

func TestConfigStore_KeyConflict(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("catalog.path", "/tmp/x.json"))

	err = store.Set("catalog", "flat")

	assert.ErrorIs(t, err, errKeyConflict)
	_, ok := store.Get("catalog")
	assert.False(t, ok)
	assert.NoError(t, store.Save())
}

func TestFlattenAndNest(t *testing.T) {
	nested := map[string]any{
		"a": map[string]any{"b": int64(1), "c": map[string]any{"d": "x"}},
		"e": true,
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, map[string]any{"a.b": int64(1), "a.c.d": "x", "e": true}, flat)

	back, err := nestKeys(flat)
	require.NoError(t, err)
	assert.Equal(t, nested, back)
}
