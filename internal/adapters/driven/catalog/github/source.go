package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	catalogfile "github.com/custodia-labs/leetlens/internal/adapters/driven/catalog/file"
	"github.com/custodia-labs/leetlens/internal/core/domain"
	"github.com/custodia-labs/leetlens/internal/core/ports/driven"
	"github.com/custodia-labs/leetlens/internal/logger"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// Config locates the catalog file.
type Config struct {
	Owner string
	Repo  string
	Path  string
	// Ref is a branch, tag or commit. Empty means the default branch.
	Ref string
	// Token is optional.
	Token string
}

// Validate checks the required fields.
func (c Config) Validate() error {
	if c.Owner == "" || c.Repo == "" || c.Path == "" {
		return ErrInvalidConfig
	}
	return nil
}

// Source fetches the catalog from GitHub.
type Source struct {
	cfg         Config
	gh          *gh.Client
	rateLimiter *RateLimiter
}

// Option configures a Source.
type Option func(*Source) error

// WithBaseURL points the client at another API root, such as GitHub
// Enterprise or a test server.
func WithBaseURL(baseURL string) Option {
	return func(s *Source) error {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return fmt.Errorf("parse base url: %w", err)
		}
		s.gh.BaseURL = u
		return nil
	}
}

// NewSource creates a GitHub catalog source.
// With a token, requests are authenticated through an oauth2 static token source.
func NewSource(ctx context.Context, cfg Config, opts ...Option) (*Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var httpClient *http.Client
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		httpClient = oauth2.NewClient(ctx, ts)
	} else {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = DefaultTimeout

	s := &Source{
		cfg:         cfg,
		gh:          gh.NewClient(httpClient),
		rateLimiter: NewRateLimiter(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Name identifies the source in logs.
func (s *Source) Name() string {
	name := fmt.Sprintf("github:%s/%s/%s", s.cfg.Owner, s.cfg.Repo, s.cfg.Path)
	if s.cfg.Ref != "" {
		name += "@" + s.cfg.Ref
	}
	return name
}

// RateLimiter returns the rate limiter for external access.
func (s *Source) RateLimiter() *RateLimiter {
	return s.rateLimiter
}

// Fetch downloads and decodes the catalog file.
func (s *Source) Fetch(ctx context.Context) ([]domain.Problem, error) {
	data, err := s.fileContent(ctx)
	if err != nil {
		return nil, s.hint(err)
	}

	problems, err := catalogfile.Decode([]byte(data), catalogfile.FormatFromPath(s.cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name(), err)
	}
	logger.Debug("Fetched %d problems from %s", len(problems), s.Name())
	return problems, nil
}

// hint prefixes API failures with what the user can change.
// The original error stays in the chain.
func (s *Source) hint(err error) error {
	switch {
	case IsNotFound(err):
		return fmt.Errorf("%s: no such file, check owner, repo, path and ref: %w", s.Name(), err)
	case IsUnauthorized(err):
		return fmt.Errorf("%s: token rejected, set a valid token or omit it for public repos: %w", s.Name(), err)
	case IsRateLimited(err) && s.cfg.Token == "":
		return fmt.Errorf("%s: anonymous rate limit reached, a token raises it: %w", s.Name(), err)
	case IsRateLimited(err):
		return fmt.Errorf("%s: %w", s.Name(), err)
	default:
		return err
	}
}

// fileContent returns the decoded file body.
// Files over 1MB have encoding "none" and are downloaded instead.
func (s *Source) fileContent(ctx context.Context) (string, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	opts := &gh.RepositoryContentGetOptions{Ref: s.cfg.Ref}
	content, _, resp, err := s.gh.Repositories.GetContents(ctx, s.cfg.Owner, s.cfg.Repo, s.cfg.Path, opts)
	s.updateRateLimitFromResponse(resp)
	if err != nil {
		return "", s.wrapError(err, "get contents")
	}
	if content == nil {
		return "", ErrNotAFile
	}

	if content.GetEncoding() != "none" {
		decoded, err := content.GetContent()
		if err != nil {
			return "", fmt.Errorf("decode content: %w", err)
		}
		return decoded, nil
	}

	logger.Debug("Catalog file is %d bytes, downloading", content.GetSize())
	return s.download(ctx, opts)
}

func (s *Source) download(ctx context.Context, opts *gh.RepositoryContentGetOptions) (string, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	rc, resp, err := s.gh.Repositories.DownloadContents(ctx, s.cfg.Owner, s.cfg.Repo, s.cfg.Path, opts)
	s.updateRateLimitFromResponse(resp)
	if err != nil {
		return "", s.wrapError(err, "download contents")
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read download: %w", err)
	}
	return string(body), nil
}

func (s *Source) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	s.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to our error types.
func (s *Source) wrapError(err error, operation string) error {
	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   rateLimitErr.Rate.Reset.Time,
			Remaining: rateLimitErr.Rate.Remaining,
			Limit:     rateLimitErr.Rate.Limit,
		}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		apiErr := &APIError{StatusCode: ghErr.Response.StatusCode, Message: ghErr.Message}
		if ghErr.Response.Request != nil {
			apiErr.URL = ghErr.Response.Request.URL.String()
		}
		return apiErr
	}

	return fmt.Errorf("%s: %w", operation, err)
}
