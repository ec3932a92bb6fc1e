package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	catalogfile "github.com/custodia-labs/leetlens/internal/adapters/driven/catalog/file"
	"github.com/custodia-labs/leetlens/internal/core/domain"
	"github.com/custodia-labs/leetlens/internal/htmltext"
	"github.com/custodia-labs/leetlens/internal/logger"
)

// Response helpers

type apiResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Warn("Failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{Error: &apiError{Code: code, Message: message}}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Warn("Failed to encode error response: %v", err)
	}
}

// respondServiceError maps domain errors to HTTP statuses.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, domain.ErrSearchInProgress):
		respondError(w, http.StatusConflict, "search_in_progress", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrRateLimited):
		respondError(w, http.StatusTooManyRequests, "rate_limited", err.Error())
	case errors.Is(err, domain.ErrScrapeFailed), errors.Is(err, domain.ErrCatalogUnavailable):
		respondError(w, http.StatusBadGateway, "upstream_failed", err.Error())
	default:
		logger.Error("Request failed: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return false
	}
	return true
}

// Health

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Matches

// findMatchesRequest carries the query as plain text, a page's HTML, or a
// URL to scrape. URL wins, then HTML.
type findMatchesRequest struct {
	Text      string   `json:"text"`
	HTML      string   `json:"html"`
	URL       string   `json:"url"`
	Threshold *float64 `json:"threshold"`
}

func (s *Server) handleFindMatches(w http.ResponseWriter, r *http.Request) {
	var req findMatchesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	opts := domain.MatchOptions{Threshold: req.Threshold}

	var (
		report *domain.MatchReport
		err    error
	)
	if strings.TrimSpace(req.URL) != "" {
		report, err = s.ports.Match.FindMatchesForURL(r.Context(), req.URL, opts)
	} else {
		text := req.Text
		if req.HTML != "" {
			text = htmltext.PageText(req.HTML)
		}
		// Empty text is a valid query with no matches.
		report, err = s.ports.Match.FindMatches(r.Context(), text, opts)
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// Catalog

func (s *Server) handleCatalogCount(w http.ResponseWriter, r *http.Request) {
	n, err := s.ports.Catalog.Count(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"count": n})
}

func (s *Server) handleListProblems(w http.ResponseWriter, r *http.Request) {
	problems, err := s.ports.Catalog.Problems(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, problems)
}

// handleReplaceCatalog accepts a JSON list of problems, decoded with the
// same rules as a catalog file: non-object entries are skipped and bad
// fields are left empty.
func (s *Server) handleReplaceCatalog(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	problems, err := catalogfile.Decode(body, catalogfile.FormatJSON)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if err := s.ports.Catalog.Replace(r.Context(), problems); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"count": len(problems)})
}

func (s *Server) handleRefreshCatalog(w http.ResponseWriter, r *http.Request) {
	n, err := s.ports.Catalog.Refresh(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"count": n})
}

// Settings

type settingsResponse struct {
	Threshold       float64 `json:"threshold"`
	Preset          string  `json:"preset,omitempty"`
	Visible         bool    `json:"visible"`
	LastResultCount int     `json:"lastResultCount"`
}

func (s *Server) handleGetSettings(w http.ResponseWriter, _ *http.Request) {
	settings, err := s.ports.Settings.Get()
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := settingsResponse{
		Threshold:       settings.Threshold,
		Visible:         settings.Visible,
		LastResultCount: settings.LastResultCount,
	}
	if preset, ok := domain.PresetFor(settings.Threshold); ok {
		resp.Preset = preset.Name
	}
	respondJSON(w, http.StatusOK, resp)
}

type thresholdRequest struct {
	Threshold *float64 `json:"threshold"`
	Preset    string   `json:"preset"`
}

func (s *Server) handleSetThreshold(w http.ResponseWriter, r *http.Request) {
	var req thresholdRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var value float64
	switch {
	case req.Preset != "":
		preset, ok := domain.PresetByName(req.Preset)
		if !ok {
			respondServiceError(w, fmt.Errorf("%w: unknown preset %q", domain.ErrInvalidInput, req.Preset))
			return
		}
		value = preset.Value
	case req.Threshold != nil:
		value = *req.Threshold
	default:
		respondServiceError(w, fmt.Errorf("%w: threshold or preset is required", domain.ErrInvalidInput))
		return
	}

	if err := s.ports.Settings.SetThreshold(value); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]float64{"threshold": value})
}

func (s *Server) handleToggleVisibility(w http.ResponseWriter, _ *http.Request) {
	visible, err := s.ports.Settings.ToggleVisibility()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"visible": visible})
}
