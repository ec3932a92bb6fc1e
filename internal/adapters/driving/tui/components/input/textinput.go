// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui/styles"
)

// maxQueryChars bounds pasted problem statements.
const maxQueryChars = 20000

// QueryInput wraps a bubbles textarea for pasting problem text.
type QueryInput struct {
	textarea textarea.Model
	styles   *styles.Styles
	width    int
}

// NewQueryInput creates a new query input component.
func NewQueryInput(s *styles.Styles) *QueryInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ta := textarea.New()
	ta.Placeholder = "Paste a problem title or statement..."
	ta.CharLimit = maxQueryChars
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(6)
	ta.Focus()

	return &QueryInput{
		textarea: ta,
		styles:   s,
		width:    60,
	}
}

// Init initialises the query input.
func (q *QueryInput) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles input messages.
func (q *QueryInput) Update(msg tea.Msg) (*QueryInput, tea.Cmd) {
	var cmd tea.Cmd
	q.textarea, cmd = q.textarea.Update(msg)
	return q, cmd
}

// View renders the query input.
func (q *QueryInput) View() string {
	label := q.styles.Title.Render("Problem text")
	return lipgloss.JoinVertical(lipgloss.Left, label, q.styles.InputField.Render(q.textarea.View()))
}

// Value returns the current input value.
func (q *QueryInput) Value() string {
	return q.textarea.Value()
}

// SetValue sets the input value.
func (q *QueryInput) SetValue(value string) {
	q.textarea.SetValue(value)
}

// Focus sets focus on the input.
func (q *QueryInput) Focus() tea.Cmd {
	return q.textarea.Focus()
}

// Blur removes focus from the input.
func (q *QueryInput) Blur() {
	q.textarea.Blur()
}

// Focused returns whether the input is focused.
func (q *QueryInput) Focused() bool {
	return q.textarea.Focused()
}

// SetWidth sets the width of the input.
func (q *QueryInput) SetWidth(width int) {
	q.width = width
	// Border and padding take four columns.
	inner := width - 4
	if inner < 20 {
		inner = 20
	}
	q.textarea.SetWidth(inner)
}

// Width returns the current width.
func (q *QueryInput) Width() int {
	return q.width
}

// Reset clears the input.
func (q *QueryInput) Reset() {
	q.textarea.Reset()
}
