package driving

import "github.com/custodia-labs/leetlens/internal/core/domain"

// SettingsService manages user settings.
type SettingsService interface {
	// Get retrieves the current settings, filling in defaults.
	Get() (domain.Settings, error)

	// Threshold returns the active similarity threshold.
	Threshold() float64

	// SetThreshold validates and persists a new threshold.
	SetThreshold(value float64) error

	// ToggleVisibility flips the visibility flag and returns the new value.
	ToggleVisibility() (bool, error)

	// RecordResultCount stores the size of the latest result list.
	RecordResultCount(n int) error
}
