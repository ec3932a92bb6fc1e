package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for leetlens resources.
	uriScheme = "leetlens://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	if s.ports.Catalog != nil {
		s.server.AddResource(&mcp.Resource{
			URI:         uriScheme + "catalog",
			Name:        "catalog",
			Description: "Titles, difficulty and links of every catalog problem",
			MIMEType:    "application/json",
		}, s.handleCatalogResource)
	}

	if s.ports.Settings != nil {
		s.server.AddResource(&mcp.Resource{
			URI:         uriScheme + "settings",
			Name:        "settings",
			Description: "Current matching settings",
			MIMEType:    "application/json",
		}, s.handleSettingsResource)
	}
}

// catalogEntry is the catalog resource's view of a problem.
// Descriptions are left out to keep the resource small.
type catalogEntry struct {
	Title      string   `json:"title"`
	URL        string   `json:"url,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	Topics     []string `json:"topics,omitempty"`
	IsPremium  bool     `json:"is_premium,omitempty"`
}

func (s *Server) handleCatalogResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	problems, err := s.ports.Catalog.Problems(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	entries := make([]catalogEntry, len(problems))
	for i := range problems {
		entries[i] = catalogEntry{
			Title:      problems[i].Title,
			URL:        problems[i].URL,
			Difficulty: problems[i].Difficulty.String(),
			Topics:     problems[i].Topics,
			IsPremium:  problems[i].IsPremium,
		}
	}

	return jsonResource(req.Params.URI, entries)
}

func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	view := struct {
		Threshold       float64 `json:"threshold"`
		Preset          string  `json:"preset,omitempty"`
		Visible         bool    `json:"visible"`
		LastResultCount int     `json:"last_result_count"`
	}{
		Threshold:       settings.Threshold,
		Preset:          thresholdOutput(settings.Threshold).Preset,
		Visible:         settings.Visible,
		LastResultCount: settings.LastResultCount,
	}

	return jsonResource(req.Params.URI, view)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
