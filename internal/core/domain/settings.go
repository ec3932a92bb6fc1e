package domain

import (
	"fmt"
	"math"
)

// DefaultThreshold is the similarity threshold used until the user picks one.
const DefaultThreshold = 0.4

// presetTolerance is how close a threshold must be to count as a preset.
const presetTolerance = 0.01

// ThresholdPreset is a named threshold offered by settings surfaces.
type ThresholdPreset struct {
	Name  string
	Value float64
}

// ThresholdPresets lists the preset thresholds from loosest to strictest.
var ThresholdPresets = []ThresholdPreset{
	{Name: "loose", Value: 0.2},
	{Name: "balanced", Value: 0.4},
	{Name: "strict", Value: 0.6},
	{Name: "exact", Value: 0.8},
}

// PresetFor returns the preset matching value within a small tolerance.
func PresetFor(value float64) (ThresholdPreset, bool) {
	for _, p := range ThresholdPresets {
		if math.Abs(p.Value-value) < presetTolerance {
			return p, true
		}
	}
	return ThresholdPreset{}, false
}

// PresetByName looks up a preset by name.
func PresetByName(name string) (ThresholdPreset, bool) {
	for _, p := range ThresholdPresets {
		if p.Name == name {
			return p, true
		}
	}
	return ThresholdPreset{}, false
}

// ValidateThreshold checks that a threshold is a number in [0,1].
// The matcher itself accepts any value; this guards what gets persisted.
func ValidateThreshold(value float64) error {
	if math.IsNaN(value) || value < 0 || value > 1 {
		return fmt.Errorf("%w: threshold %v outside [0,1]", ErrInvalidInput, value)
	}
	return nil
}

// Settings holds user-configurable options.
type Settings struct {
	// Threshold is the similarity threshold applied to searches.
	Threshold float64

	// Visible controls whether presenters offer the search action at all.
	Visible bool

	// LastResultCount is the number of matches returned by the most recent search.
	LastResultCount int
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Threshold: DefaultThreshold,
		Visible:   true,
	}
}
