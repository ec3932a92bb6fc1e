// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/leetlens/internal/core/domain"
)

// ResultList displays matches in a navigable list.
// Matches are shown in the order given; the list never re-sorts them.
type ResultList struct {
	results  []domain.MatchResult
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No similar problems found")
	}

	lines := make([]string, 0, len(r.results)+2)
	lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("Matches (%d)", len(r.results))), "")

	// Two lines per result.
	visibleCount := (r.height - 2) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := min(start+visibleCount, len(r.results))

	for i := start; i < end; i++ {
		lines = append(lines, r.renderResult(i, &r.results[i]))
	}

	return strings.Join(lines, "\n")
}

// maxTopics caps the topics shown on a detail line.
const maxTopics = 4

// renderResult formats one match as a title line and a detail line.
func (r *ResultList) renderResult(index int, m *domain.MatchResult) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	title := m.Title
	maxTitleLen := r.width - 24
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if runes := []rune(title); len(runes) > maxTitleLen {
		title = string(runes[:maxTitleLen-3]) + "..."
	}

	score := fmt.Sprintf("%3d%%", domain.Percent(m.CombinedScore))
	badge := ""
	if m.MatchType == domain.MatchTypeExact {
		badge = " " + r.styles.ExactBadge.Render("exact")
	}

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitleLen, title, score))
	} else {
		titleLine = r.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxTitleLen, title)) +
			r.styles.Muted.Render(score)
	}

	details := []string{r.styles.Difficulty(m.Difficulty).Render(string(m.Difficulty))}
	if m.IsPremium {
		details = append(details, r.styles.Muted.Render("premium"))
	}
	if topics := m.TopTopics(maxTopics); len(topics) > 0 {
		details = append(details, r.styles.Muted.Render(strings.Join(topics, ", ")))
	}
	if m.URL != "" {
		details = append(details, r.styles.Muted.Render(m.URL))
	}

	return titleLine + badge + "\n    " + strings.Join(details, r.styles.Muted.Render(" · "))
}

// SetResults updates the result list.
func (r *ResultList) SetResults(results []domain.MatchResult) {
	r.results = results
	r.selected = 0
}

// Results returns the current results.
func (r *ResultList) Results() []domain.MatchResult {
	return r.results
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SelectedResult returns the currently selected result, or nil if none.
func (r *ResultList) SelectedResult() *domain.MatchResult {
	if r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}
