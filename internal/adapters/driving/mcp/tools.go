package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/leetlens/internal/core/domain"
)

// errNoSettings is returned by the threshold tools when settings are not wired.
var errNoSettings = errors.New("mcp: settings are not available")

// FindMatchesInput is the input schema for the find_matches tool.
type FindMatchesInput struct {
	Text      string   `json:"text,omitempty" jsonschema:"problem statement text to match against the catalog"`
	URL       string   `json:"url,omitempty" jsonschema:"problem page to scrape instead of passing text"`
	Threshold *float64 `json:"threshold,omitempty" jsonschema:"similarity threshold in [0,1]; defaults to the configured value"`
}

// FindMatchesOutput is the output schema for the find_matches tool.
type FindMatchesOutput struct {
	ID          string        `json:"id"`
	Threshold   float64       `json:"threshold"`
	CatalogSize int           `json:"catalog_size"`
	Count       int           `json:"count"`
	Matches     []MatchOutput `json:"matches"`
}

// MatchOutput represents a single match.
type MatchOutput struct {
	Title         string   `json:"title"`
	URL           string   `json:"url,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	Topics        []string `json:"topics,omitempty"`
	IsPremium     bool     `json:"is_premium"`
	MatchType     string   `json:"match_type"`
	Percent       int      `json:"percent"`
	TitleMatch    float64  `json:"title_match"`
	DescMatch     float64  `json:"desc_match"`
	CombinedScore float64  `json:"combined_score"`
}

// ThresholdInput is the input schema for the set_threshold tool.
type ThresholdInput struct {
	Threshold *float64 `json:"threshold,omitempty" jsonschema:"new threshold in [0,1]"`
	Preset    string   `json:"preset,omitempty" jsonschema:"preset name: loose, balanced, strict or exact"`
}

// ThresholdOutput is the output schema for the threshold tools.
type ThresholdOutput struct {
	Threshold float64 `json:"threshold"`
	Preset    string  `json:"preset,omitempty"`
}

// EmptyInput is the input schema for tools that take no arguments.
type EmptyInput struct{}

// CatalogOutput is the output schema for catalog_info.
type CatalogOutput struct {
	Count int `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_matches",
		Description: "Find catalog problems similar to a problem statement or page",
	}, s.handleFindMatches)

	if s.ports.Settings != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_threshold",
			Description: "Get the similarity threshold used by find_matches",
		}, s.handleGetThreshold)

		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "set_threshold",
			Description: "Set the similarity threshold by value or preset name",
		}, s.handleSetThreshold)
	}

	if s.ports.Catalog != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "catalog_info",
			Description: "Report how many problems the catalog holds",
		}, s.handleCatalogInfo)
	}
}

// handleFindMatches handles the find_matches tool invocation.
func (s *Server) handleFindMatches(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FindMatchesInput,
) (*mcp.CallToolResult, FindMatchesOutput, error) {
	opts := domain.MatchOptions{Threshold: input.Threshold}

	var (
		report *domain.MatchReport
		err    error
	)
	switch {
	case strings.TrimSpace(input.URL) != "":
		report, err = s.ports.Match.FindMatchesForURL(ctx, input.URL, opts)
	case strings.TrimSpace(input.Text) != "":
		report, err = s.ports.Match.FindMatches(ctx, input.Text, opts)
	default:
		return nil, FindMatchesOutput{}, errNoInput
	}
	if err != nil {
		return nil, FindMatchesOutput{}, err
	}

	output := FindMatchesOutput{
		ID:          report.ID,
		Threshold:   report.Threshold,
		CatalogSize: report.CatalogSize,
		Count:       len(report.Matches),
		Matches:     make([]MatchOutput, len(report.Matches)),
	}
	for i := range report.Matches {
		m := &report.Matches[i]
		output.Matches[i] = MatchOutput{
			Title:         m.Title,
			URL:           m.URL,
			Difficulty:    m.Difficulty.String(),
			Topics:        m.Topics,
			IsPremium:     m.IsPremium,
			MatchType:     m.MatchType.String(),
			Percent:       domain.Percent(m.Confidence),
			TitleMatch:    m.TitleMatch,
			DescMatch:     m.DescMatch,
			CombinedScore: m.CombinedScore,
		}
	}

	return nil, output, nil
}

func (s *Server) handleGetThreshold(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, ThresholdOutput, error) {
	if s.ports.Settings == nil {
		return nil, ThresholdOutput{}, errNoSettings
	}
	return nil, thresholdOutput(s.ports.Settings.Threshold()), nil
}

func (s *Server) handleSetThreshold(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ThresholdInput,
) (*mcp.CallToolResult, ThresholdOutput, error) {
	if s.ports.Settings == nil {
		return nil, ThresholdOutput{}, errNoSettings
	}

	var value float64
	switch {
	case input.Preset != "":
		preset, ok := domain.PresetByName(input.Preset)
		if !ok {
			return nil, ThresholdOutput{}, fmt.Errorf("%w: unknown preset %q", domain.ErrInvalidInput, input.Preset)
		}
		value = preset.Value
	case input.Threshold != nil:
		value = *input.Threshold
	default:
		return nil, ThresholdOutput{}, fmt.Errorf("%w: threshold or preset is required", domain.ErrInvalidInput)
	}

	if err := s.ports.Settings.SetThreshold(value); err != nil {
		return nil, ThresholdOutput{}, err
	}
	return nil, thresholdOutput(value), nil
}

func (s *Server) handleCatalogInfo(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, CatalogOutput, error) {
	n, err := s.ports.Catalog.Count(ctx)
	if err != nil {
		return nil, CatalogOutput{}, err
	}
	return nil, CatalogOutput{Count: n}, nil
}

func thresholdOutput(value float64) ThresholdOutput {
	out := ThresholdOutput{Threshold: value}
	if preset, ok := domain.PresetFor(value); ok {
		out.Preset = preset.Name
	}
	return out
}
