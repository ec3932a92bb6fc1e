package driven

import "context"

// PageScraper extracts the textual content of a problem page.
type PageScraper interface {
	// Scrape returns the page's title, statement and constraints joined
	// into one string. Returns domain.ErrScrapeFailed when nothing is found.
	Scrape(ctx context.Context, url string) (string, error)
}
