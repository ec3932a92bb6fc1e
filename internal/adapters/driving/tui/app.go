package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/leetlens/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles

	menuView     *menu.View
	searchView   *search.View
	settingsView *settings.View

	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		menuView:     menu.NewView(s),
		searchView:   search.NewView(s, km, ports.Match),
		settingsView: settings.NewView(s, km, ports.Settings, ports.Catalog),
		currentView:  messages.ViewMenu,
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.settingsView.WithContext(ctx)
	return a
}

// WithMinDelay sets how long the search spinner stays up at least.
func (a *App) WithMinDelay(d time.Duration) *App {
	a.searchView.WithMinDelay(d)
	return a
}

// Init implements tea.Model.
// Settings load up front so the menu and status bar reflect them.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("leetlens"),
		a.settingsView.Load(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.forward(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewSearch:
			return a, a.searchView.Init()
		case messages.ViewSettings:
			return a, a.settingsView.Load()
		case messages.ViewMenu:
		}
		return a, nil

	case messages.SettingsLoaded:
		if msg.Err == nil {
			a.menuView.SetSearchVisible(msg.Settings.Visible)
			a.searchView.SetThreshold(msg.Settings.Threshold)
		} else {
			a.err = msg.Err
		}
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ThresholdChanged:
		if msg.Err == nil {
			a.searchView.SetThreshold(msg.Threshold)
		}
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.VisibilityToggled:
		if msg.Err == nil {
			a.menuView.SetSearchVisible(msg.Visible)
		}
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.CatalogRefreshed:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.MatchesFound:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
	}

	return a, a.forward(msg)
}

// forward passes msg to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	default:
		return a.menuView.View()
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Results returns the matches of the last search.
func (a *App) Results() []domain.MatchResult {
	return a.searchView.Results()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
