// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateError     State = "error"
	StateResults   State = "results"
)

// Bar displays search status, the active threshold and keybinding hints.
type Bar struct {
	styles      *styles.Styles
	hints       []key.Binding
	state       State
	message     string
	resultCount int
	threshold   float64
	width       int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Bar{
		styles: s,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update is a no-op; the bar is driven through its setters.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	threshold := s.styles.Muted.Render(fmt.Sprintf("threshold %d%%", int(s.threshold*100+0.5)))

	var state string
	switch s.state {
	case StateSearching:
		state = s.styles.Muted.Render("Searching...")
	case StateError:
		if s.message != "" {
			state = s.styles.Error.Render("Error: " + s.message)
		} else {
			state = s.styles.Error.Render("Error")
		}
	case StateResults:
		state = s.styles.Normal.Render(fmt.Sprintf("%d matches", s.resultCount))
	default:
		state = s.styles.Muted.Render("Ready")
		if s.message != "" {
			state = s.styles.Normal.Render(s.message)
		}
	}

	return state + "  " + threshold
}

func (s *Bar) renderRight() string {
	hints := make([]string, 0, len(s.hints))
	for _, b := range s.hints {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetResultCount sets the result count.
func (s *Bar) SetResultCount(count int) {
	s.resultCount = count
}

// SetThreshold sets the threshold shown in the bar.
func (s *Bar) SetThreshold(threshold float64) {
	s.threshold = threshold
}

// SetHints sets the keybinding hints shown on the right.
func (s *Bar) SetHints(hints []key.Binding) {
	s.hints = hints
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Clear resets the status bar to its ready state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.resultCount = 0
}
