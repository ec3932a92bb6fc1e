// Package api serves leetlens over a local HTTP JSON API.
//
// The routes mirror the messages the browser extension exchanged with its
// background worker, so a thin page script can drive the matcher:
//
//	POST /api/v1/matches                        find matches for text or a url
//	GET  /api/v1/catalog                        problem count
//	GET  /api/v1/catalog/problems               full catalog
//	PUT  /api/v1/catalog                        replace the catalog
//	POST /api/v1/catalog/refresh                reload from sources
//	GET  /api/v1/settings                       current settings
//	PUT  /api/v1/settings/threshold             set threshold or preset
//	POST /api/v1/settings/visibility/toggle     flip visibility
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/custodia-labs/leetlens/internal/core/ports/driving"
	"github.com/custodia-labs/leetlens/internal/logger"
)

// ErrMissingMatchService is returned when the match service is not provided.
var ErrMissingMatchService = errors.New("api: match service is required")

// maxBodyBytes bounds request bodies; a full catalog is a few megabytes.
const maxBodyBytes = 32 << 20

// Ports aggregates the driving ports the API exposes.
type Ports struct {
	Match    driving.MatchService
	Catalog  driving.CatalogService
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Catalog and Settings are optional; their routes are omitted when nil.
func (p *Ports) Validate() error {
	if p.Match == nil {
		return ErrMissingMatchService
	}
	return nil
}

// Server is the HTTP API server.
type Server struct {
	ports  *Ports
	router *chi.Mux
}

// NewServer creates an API server.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}
	s := &Server{ports: ports}
	s.setupRouter()
	return s, nil
}

// Router returns the configured router.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run listens on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// setupRouter configures all routes and middleware.
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Page scripts call in from arbitrary origins; nothing here uses cookies.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/matches", s.handleFindMatches)

		if s.ports.Catalog != nil {
			r.Route("/catalog", func(r chi.Router) {
				r.Get("/", s.handleCatalogCount)
				r.Put("/", s.handleReplaceCatalog)
				r.Get("/problems", s.handleListProblems)
				r.Post("/refresh", s.handleRefreshCatalog)
			})
		}

		if s.ports.Settings != nil {
			r.Route("/settings", func(r chi.Router) {
				r.Get("/", s.handleGetSettings)
				r.Put("/threshold", s.handleSetThreshold)
				r.Post("/visibility/toggle", s.handleToggleVisibility)
			})
		}
	})

	s.router = r
}

// loggingMiddleware logs each request at debug level.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logger.Debug("%s %s %d %dB %s req=%s",
				r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(),
				time.Since(start).Round(time.Millisecond), middleware.GetReqID(r.Context()))
		}()

		next.ServeHTTP(ww, r)
	})
}
