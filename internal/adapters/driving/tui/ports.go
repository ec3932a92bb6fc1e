// Package tui provides an interactive terminal user interface for leetlens.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/leetlens/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Match runs searches against the catalog.
	Match driving.MatchService

	// Catalog reports and refreshes the problem catalog.
	Catalog driving.CatalogService

	// Settings manages the threshold and visibility.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	match driving.MatchService,
	catalog driving.CatalogService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Match:    match,
		Catalog:  catalog,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
// Only the match service is required; the settings view degrades without the others.
func (p *Ports) Validate() error {
	if p.Match == nil {
		return ErrMissingMatchService
	}
	return nil
}
