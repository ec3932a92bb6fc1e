package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSearchInProgress indicates a search is already running for this session.
	ErrSearchInProgress = errors.New("search in progress")

	// ErrCatalogUnavailable indicates no catalog source could supply problems.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrScrapeFailed indicates the page scraper could not extract any content.
	ErrScrapeFailed = errors.New("scrape failed")

	// ErrRateLimited indicates a remote API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
