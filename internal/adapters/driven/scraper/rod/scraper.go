package rod

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/custodia-labs/leetlens/internal/core/domain"
	"github.com/custodia-labs/leetlens/internal/core/ports/driven"
	"github.com/custodia-labs/leetlens/internal/logger"
)

// DefaultTimeout bounds a single page scrape.
const DefaultTimeout = 30 * time.Second

// Ensure Scraper implements the interface.
var _ driven.PageScraper = (*Scraper)(nil)

// Config configures a Scraper.
type Config struct {
	Selectors Selectors
	// Timeout bounds each Scrape call. Zero means DefaultTimeout.
	Timeout time.Duration
	// BrowserBin is the Chromium binary. Empty looks one up on the system,
	// and failing that lets rod download one.
	BrowserBin string
	// ControlURL connects to an already running browser instead of launching one.
	ControlURL string
}

// Scraper renders pages in a headless browser and extracts problem text.
// The browser is started on first use and reused until Close.
type Scraper struct {
	cfg Config

	mu      sync.Mutex
	browser *rod.Browser
}

// New creates a scraper. No browser is started until the first Scrape.
func New(cfg Config) *Scraper {
	cfg.Selectors = cfg.Selectors.withDefaults()
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Scraper{cfg: cfg}
}

// Selectors returns the effective selectors.
func (s *Scraper) Selectors() Selectors {
	return s.cfg.Selectors
}

// Scrape loads url and returns its problem text.
func (s *Scraper) Scrape(ctx context.Context, url string) (string, error) {
	if strings.TrimSpace(url) == "" {
		return "", fmt.Errorf("%w: empty url", domain.ErrInvalidInput)
	}

	browser, err := s.connect(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: start browser: %v", domain.ErrScrapeFailed, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", domain.ErrScrapeFailed, url, err)
	}
	defer page.Close()

	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("%w: load %s: %v", domain.ErrScrapeFailed, url, err)
	}

	content, err := extract(page, s.cfg.Selectors)
	if err != nil {
		return "", fmt.Errorf("%w: extract %s: %v", domain.ErrScrapeFailed, url, err)
	}

	text := content.Text()
	if text == "" {
		return "", fmt.Errorf("%w: no problem content at %s", domain.ErrScrapeFailed, url)
	}
	logger.Debug("Scraped %d characters from %s", len(text), url)
	return text, nil
}

// Close shuts down the browser if one was started.
func (s *Scraper) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.browser == nil {
		return nil
	}
	err := s.browser.Close()
	s.browser = nil
	return err
}

func (s *Scraper) connect(ctx context.Context) (*rod.Browser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.browser != nil {
		return s.browser, nil
	}

	controlURL := s.cfg.ControlURL
	if controlURL == "" {
		l := launcher.New().Context(ctx).Headless(true)
		bin := s.cfg.BrowserBin
		if bin == "" {
			bin, _ = launcher.LookPath()
		}
		if bin != "" {
			l = l.Bin(bin)
		}
		u, err := l.Launch()
		if err != nil {
			return nil, err
		}
		controlURL = u
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, err
	}
	s.browser = browser
	return browser, nil
}

// extract reads the configured regions of a loaded page.
// A missing region is not an error; it contributes nothing.
func extract(page *rod.Page, sel Selectors) (PageContent, error) {
	var content PageContent

	if ok, el, err := page.Has(sel.Title); err != nil {
		return content, err
	} else if ok {
		if content.Title, err = el.Text(); err != nil {
			return content, err
		}
	}

	if ok, el, err := page.Has(sel.Description); err != nil {
		return content, err
	} else if ok {
		paragraphs, err := el.Elements("p")
		if err != nil {
			return content, err
		}
		if content.Paragraphs, err = texts(paragraphs); err != nil {
			return content, err
		}
	}

	if ok, el, err := page.Has(sel.Constraints); err != nil {
		return content, err
	} else if ok {
		hasList, list, err := el.Has("ul")
		if err != nil {
			return content, err
		}
		if hasList {
			items, err := list.Elements("li")
			if err != nil {
				return content, err
			}
			if content.Constraints, err = texts(items); err != nil {
				return content, err
			}
		}
	}

	return content, nil
}

func texts(elements rod.Elements) ([]string, error) {
	out := make([]string, 0, len(elements))
	for _, el := range elements {
		text, err := el.Text()
		if err != nil {
			return nil, err
		}
		out = append(out, text)
	}
	return out, nil
}
