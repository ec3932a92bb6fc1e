// Package search provides the query and results view for the TUI.
package search

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/leetlens/internal/core/domain"
	"github.com/custodia-labs/leetlens/internal/core/ports/driving"
)

// DefaultMinDelay is the shortest time the loading spinner stays visible.
const DefaultMinDelay = 800 * time.Millisecond

// View is the search view: a text area, a spinner while searching,
// the ranked match list and a status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	list      *list.ResultList
	statusbar *status.Bar
	spinner   spinner.Model

	matchService driving.MatchService
	ctx          context.Context
	minDelay     time.Duration

	width      int
	height     int
	ready      bool
	err        error
	searching  bool
	focusInput bool
	report     *domain.MatchReport
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap, matchService driving.MatchService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = s.Title

	bar := status.NewBar(s)
	bar.SetThreshold(domain.DefaultThreshold)
	bar.SetHints(km.InputHelp())

	return &View{
		styles:       s,
		keymap:       km,
		input:        input.NewQueryInput(s),
		list:         list.NewResultList(s),
		statusbar:    bar,
		spinner:      sp,
		matchService: matchService,
		ctx:          context.Background(),
		minDelay:     DefaultMinDelay,
		width:        80,
		height:       24,
		focusInput:   true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// WithMinDelay sets the minimum spinner time. Zero disables it.
func (v *View) WithMinDelay(d time.Duration) *View {
	v.minDelay = d
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case spinner.TickMsg:
		if !v.searching {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case messages.MatchesFound:
		v.handleMatchesFound(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	if v.focusInput {
		v.input, cmd = v.input.Update(msg)
	}
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Keys are ignored while a search is running.
	if v.searching {
		return v, nil
	}

	if keymap.Matches(msg.String(), v.keymap.Back) {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if v.focusInput {
		if keymap.Matches(msg.String(), v.keymap.Submit) {
			return v, v.submit()
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.Up):
		v.list.MoveUp()
	case keymap.Matches(msg.String(), v.keymap.Down):
		v.list.MoveDown()
	case keymap.Matches(msg.String(), v.keymap.NewSearch):
		return v, v.newSearch()
	}
	return v, nil
}

// submit starts a search for the current text. Blank text is ignored.
func (v *View) submit() tea.Cmd {
	query := v.input.Value()
	if strings.TrimSpace(query) == "" {
		return nil
	}

	v.searching = true
	v.err = nil
	v.input.Blur()
	v.statusbar.SetState(status.StateSearching)

	return tea.Batch(v.spinner.Tick, v.performSearch(query))
}

// performSearch runs the search and holds the result back until the
// minimum delay has passed, so the spinner never just flickers.
func (v *View) performSearch(query string) tea.Cmd {
	svc := v.matchService
	ctx := v.ctx
	minDelay := v.minDelay

	return func() tea.Msg {
		if svc == nil {
			return messages.MatchesFound{Err: ErrNoMatchService}
		}

		start := time.Now()
		report, err := svc.FindMatches(ctx, query, domain.MatchOptions{})

		if remaining := minDelay - time.Since(start); remaining > 0 {
			select {
			case <-time.After(remaining):
			case <-ctx.Done():
			}
		}
		return messages.MatchesFound{Report: report, Err: err}
	}
}

func (v *View) handleMatchesFound(msg messages.MatchesFound) {
	v.searching = false

	if msg.Err != nil {
		v.setError(msg.Err)
		v.focusInput = true
		v.input.Focus()
		v.statusbar.SetHints(v.keymap.InputHelp())
		return
	}

	v.err = nil
	v.report = msg.Report
	var matches []domain.MatchResult
	if msg.Report != nil {
		matches = msg.Report.Matches
		v.statusbar.SetThreshold(msg.Report.Threshold)
	}
	v.list.SetResults(matches)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(len(matches))
	v.statusbar.SetHints(v.keymap.ResultsHelp())
	v.focusInput = false
}

func (v *View) newSearch() tea.Cmd {
	v.focusInput = true
	v.input.Reset()
	v.list.SetResults(nil)
	v.report = nil
	v.statusbar.Clear()
	v.statusbar.SetHints(v.keymap.InputHelp())
	return v.input.Focus()
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)
	sections = append(sections, v.styles.Title.Render("leetlens"), "", v.input.View(), "")

	switch {
	case v.searching:
		sections = append(sections, v.spinner.View()+" "+v.styles.Muted.Render("Finding similar problems..."))
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	case v.report != nil:
		sections = append(sections, v.list.View())
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	// Header, text area and status bar take about fourteen rows.
	v.list.SetDimensions(width, height-14)
	v.statusbar.SetWidth(width)
}

// SetThreshold updates the threshold shown in the status bar.
func (v *View) SetThreshold(threshold float64) {
	v.statusbar.SetThreshold(threshold)
}

// Query returns the current query text.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the query text.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Results returns the current matches.
func (v *View) Results() []domain.MatchResult {
	return v.list.Results()
}

// SelectedIndex returns the index of the selected match.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// Searching reports whether a search is in flight.
func (v *View) Searching() bool {
	return v.searching
}

// InputFocused returns whether the text area has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
