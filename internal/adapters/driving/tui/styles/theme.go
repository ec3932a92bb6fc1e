// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/leetlens/internal/core/domain"
)

// Theme defines the colour palette used by the TUI.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color

	// Easy, Medium and Hard colour difficulty labels.
	Easy   lipgloss.Color
	Medium lipgloss.Color
	Hard   lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color
}

// DefaultTheme returns the default colour theme.
// Difficulty colours follow the catalog site's own palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#FFA116"),
		Secondary:  lipgloss.Color("#06B6D4"),
		Foreground: lipgloss.Color("#CDD6F4"),
		Muted:      lipgloss.Color("#6C7086"),
		Border:     lipgloss.Color("#45475A"),
		Easy:       lipgloss.Color("#00B8A3"),
		Medium:     lipgloss.Color("#FFC01E"),
		Hard:       lipgloss.Color("#FF375F"),
		Error:      lipgloss.Color("#F38BA8"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style

	// ExactBadge marks matches whose combined score clears the exact cut-off.
	ExactBadge lipgloss.Style

	// InputField frames the query text area.
	InputField lipgloss.Style

	StatusBar lipgloss.Style
	Help      lipgloss.Style
	Border    lipgloss.Style

	easy   lipgloss.Style
	medium lipgloss.Style
	hard   lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Border),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Easy),

		ExactBadge: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(theme.Primary).
			Padding(0, 1),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		easy:   lipgloss.NewStyle().Foreground(theme.Easy),
		medium: lipgloss.NewStyle().Foreground(theme.Medium),
		hard:   lipgloss.NewStyle().Foreground(theme.Hard),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Difficulty returns the style for a difficulty label.
// Unknown labels render muted.
func (s *Styles) Difficulty(d domain.Difficulty) lipgloss.Style {
	switch d {
	case domain.DifficultyEasy:
		return s.easy
	case domain.DifficultyMedium:
		return s.medium
	case domain.DifficultyHard:
		return s.hard
	default:
		return s.Muted
	}
}
