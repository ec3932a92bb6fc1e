package rod

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-rod/rod/lib/launcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/leetlens/internal/core/domain"
)

const problemPage = `<!doctype html>
<html><body>
  <h1 class="title">Two Sum 🔍</h1>
  <div class="statement">
    <p>Given an array of integers nums and an integer target.</p>
    <p>   </p>
    <p>Return indices of the two numbers.</p>
  </div>
  <div class="constraints">
    <ul><li>2 &lt;= nums.length</li><li>Only one valid answer exists.</li></ul>
  </div>
</body></html>`

func TestNew_Defaults(t *testing.T) {
	s := New(Config{})

	assert.Equal(t, DefaultSelectors(), s.Selectors())
	assert.Equal(t, DefaultTimeout, s.cfg.Timeout)
	assert.NoError(t, s.Close())
}

func TestScraper_Scrape_EmptyURL(t *testing.T) {
	_, err := New(Config{}).Scrape(context.Background(), " ")

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

// newBrowserScraper skips unless a local Chromium is installed, so the
// suite never downloads a browser.
func newBrowserScraper(t *testing.T, sel Selectors) *Scraper {
	t.Helper()
	if testing.Short() {
		t.Skip("browser test skipped in short mode")
	}
	bin, ok := launcher.LookPath()
	if !ok {
		t.Skip("no local browser found")
	}
	s := New(Config{Selectors: sel, BrowserBin: bin, Timeout: 20 * time.Second})
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestScraper_Scrape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(problemPage))
	}))
	defer server.Close()

	s := newBrowserScraper(t, Selectors{Title: ".title", Description: ".statement", Constraints: ".constraints"})

	text, err := s.Scrape(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t,
		"Two Sum Given an array of integers nums and an integer target. "+
			"Return indices of the two numbers. 2 <= nums.length Only one valid answer exists.",
		text)
}

func TestScraper_Scrape_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>unrelated</p></body></html>"))
	}))
	defer server.Close()

	s := newBrowserScraper(t, Selectors{Title: ".title", Description: ".statement", Constraints: ".constraints"})

	_, err := s.Scrape(context.Background(), server.URL)

	assert.True(t, errors.Is(err, domain.ErrScrapeFailed))
}
