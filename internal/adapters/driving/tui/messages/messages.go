// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/leetlens/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the query input and results view.
	ViewSearch
	// ViewSettings shows threshold, visibility and catalog status.
	ViewSettings
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// MatchesFound carries a finished search back to the model.
type MatchesFound struct {
	Report *domain.MatchReport
	Err    error
}

// SettingsLoaded carries current settings and the catalog size.
type SettingsLoaded struct {
	Settings     domain.Settings
	CatalogCount int
	Err          error
}

// ThresholdChanged signals a threshold was persisted.
type ThresholdChanged struct {
	Threshold float64
	Err       error
}

// VisibilityToggled carries the new visibility state.
type VisibilityToggled struct {
	Visible bool
	Err     error
}

// CatalogRefreshed carries the catalog size after a reload.
type CatalogRefreshed struct {
	Count int
	Err   error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
