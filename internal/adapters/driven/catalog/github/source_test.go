package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/leetlens/internal/core/domain"
)

const testCatalog = `[
	{"title": "Two Sum", "difficulty": "Easy", "topics": ["Array"]},
	{"title": "LRU Cache", "difficulty": "Medium", "topics": ["Design"]}
]`

func contentsResponse(t *testing.T, w http.ResponseWriter, path, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(HeaderRateLimit, "60")
	w.Header().Set(HeaderRateRemaining, "42")
	w.Header().Set(HeaderRateReset, strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10))
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
		"type":     "file",
		"encoding": "base64",
		"name":     path,
		"path":     path,
		"size":     len(body),
		"content":  base64.StdEncoding.EncodeToString([]byte(body)),
	}))
}

func newTestSource(t *testing.T, cfg Config, handler http.HandlerFunc) *Source {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	src, err := NewSource(context.Background(), cfg, WithBaseURL(server.URL))
	require.NoError(t, err)
	return src
}

func TestNewSource_InvalidConfig(t *testing.T) {
	tests := []Config{
		{Repo: "r", Path: "p.json"},
		{Owner: "o", Path: "p.json"},
		{Owner: "o", Repo: "r"},
	}

	for _, cfg := range tests {
		_, err := NewSource(context.Background(), cfg)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	}
}

func TestSource_Name(t *testing.T) {
	src, err := NewSource(context.Background(), Config{Owner: "o", Repo: "r", Path: "data/problems.json"})
	require.NoError(t, err)
	assert.Equal(t, "github:o/r/data/problems.json", src.Name())

	src, err = NewSource(context.Background(), Config{Owner: "o", Repo: "r", Path: "p.yaml", Ref: "v2"})
	require.NoError(t, err)
	assert.Equal(t, "github:o/r/p.yaml@v2", src.Name())
}

func TestSource_Fetch(t *testing.T) {
	var gotRef, gotAuth string
	src := newTestSource(t,
		Config{Owner: "leetlens", Repo: "dataset", Path: "data/problems.json", Ref: "main", Token: "tkn"},
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/repos/leetlens/dataset/contents/data/problems.json" {
				http.NotFound(w, r)
				return
			}
			gotRef = r.URL.Query().Get("ref")
			gotAuth = r.Header.Get("Authorization")
			contentsResponse(t, w, "data/problems.json", testCatalog)
		})

	problems, err := src.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, problems, 2)
	assert.Equal(t, "Two Sum", problems[0].Title)
	assert.Equal(t, domain.DifficultyMedium, problems[1].Difficulty)
	assert.Equal(t, "main", gotRef)
	assert.Equal(t, "Bearer tkn", gotAuth)
	assert.Equal(t, 42, src.RateLimiter().Remaining())
}

func TestSource_Fetch_YAML(t *testing.T) {
	src := newTestSource(t, Config{Owner: "o", Repo: "r", Path: "problems.yaml"},
		func(w http.ResponseWriter, r *http.Request) {
			contentsResponse(t, w, "problems.yaml", "- title: Two Sum\n- title: Valid Anagram\n")
		})

	problems, err := src.Fetch(context.Background())

	require.NoError(t, err)
	assert.Len(t, problems, 2)
}

func TestSource_Fetch_NotFound(t *testing.T) {
	src := newTestSource(t, Config{Owner: "o", Repo: "r", Path: "missing.json"},
		func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "Not Found"}`))
		})

	_, err := src.Fetch(context.Background())

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsRateLimited(err))
	assert.Contains(t, err.Error(), "github:o/r/missing.json: no such file")
}

func TestSource_Fetch_Unauthorized(t *testing.T) {
	src := newTestSource(t, Config{Owner: "o", Repo: "r", Path: "p.json", Token: "bad"},
		func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message": "Bad credentials"}`))
		})

	_, err := src.Fetch(context.Background())

	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "token rejected")
}

func TestSource_Fetch_RateLimited(t *testing.T) {
	reset := time.Now().Add(30 * time.Minute).Unix()
	src := newTestSource(t, Config{Owner: "o", Repo: "r", Path: "p.json"},
		func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set(HeaderRateLimit, "60")
			w.Header().Set(HeaderRateRemaining, "0")
			w.Header().Set(HeaderRateReset, strconv.FormatInt(reset, 10))
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message": "API rate limit exceeded for 127.0.0.1."}`))
		})

	_, err := src.Fetch(context.Background())

	require.Error(t, err)
	assert.True(t, IsRateLimited(err))
	assert.True(t, errors.Is(err, domain.ErrRateLimited))
	assert.Contains(t, err.Error(), "a token raises it")
	assert.Equal(t, 0, src.RateLimiter().Remaining())
}

func TestSource_Fetch_Directory(t *testing.T) {
	src := newTestSource(t, Config{Owner: "o", Repo: "r", Path: "data"},
		func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"type": "file", "name": "problems.json", "path": "data/problems.json"}]`))
		})

	_, err := src.Fetch(context.Background())

	assert.ErrorIs(t, err, ErrNotAFile)
}

func TestSource_Fetch_MalformedCatalog(t *testing.T) {
	src := newTestSource(t, Config{Owner: "o", Repo: "r", Path: "p.json"},
		func(w http.ResponseWriter, _ *http.Request) {
			contentsResponse(t, w, "p.json", `{"not": "a list"}`)
		})

	_, err := src.Fetch(context.Background())

	assert.Error(t, err)
}
