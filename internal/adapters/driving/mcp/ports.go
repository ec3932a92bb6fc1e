package mcp

import (
	"github.com/custodia-labs/leetlens/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Match runs searches.
	Match driving.MatchService

	// Catalog reports on the loaded catalog. Optional.
	Catalog driving.CatalogService

	// Settings reads and changes the threshold. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Match == nil {
		return ErrMissingMatchService
	}
	return nil
}
