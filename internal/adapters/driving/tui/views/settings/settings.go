// Package settings provides the settings view for the TUI.
package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/leetlens/internal/core/domain"
	"github.com/custodia-labs/leetlens/internal/core/ports/driving"
)

// ErrNoSettingsService indicates settings cannot be changed.
var ErrNoSettingsService = errors.New("settings service not configured")

// View lists the threshold presets and shows visibility and catalog status.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	ctx     context.Context
	service driving.SettingsService
	catalog driving.CatalogService

	settings     domain.Settings
	catalogCount int
	selected     int
	notice       string
	err          error

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view. Either service may be nil.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	service driving.SettingsService,
	catalog driving.CatalogService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:   s,
		keymap:   km,
		ctx:      context.Background(),
		service:  service,
		catalog:  catalog,
		settings: domain.DefaultSettings(),
		selected: presetIndex(domain.DefaultThreshold),
	}
}

// WithContext sets the context for catalog calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the current settings.
func (v *View) Init() tea.Cmd {
	return v.Load()
}

// Load returns a command that reads settings and the catalog size.
func (v *View) Load() tea.Cmd {
	svc, catalog, ctx := v.service, v.catalog, v.ctx
	return func() tea.Msg {
		msg := messages.SettingsLoaded{Settings: domain.DefaultSettings()}
		if svc != nil {
			settings, err := svc.Get()
			if err != nil {
				return messages.SettingsLoaded{Err: err}
			}
			msg.Settings = settings
		}
		if catalog != nil {
			n, err := catalog.Count(ctx)
			if err != nil {
				return messages.SettingsLoaded{Err: err}
			}
			msg.CatalogCount = n
		}
		return msg
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.settings = msg.Settings
		v.catalogCount = msg.CatalogCount
		if i := presetIndex(msg.Settings.Threshold); i >= 0 {
			v.selected = i
		}
		return v, nil

	case messages.ThresholdChanged:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.settings.Threshold = msg.Threshold
		v.notice = fmt.Sprintf("Threshold set to %d%%", domain.Percent(msg.Threshold))
		return v, nil

	case messages.VisibilityToggled:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.settings.Visible = msg.Visible
		v.notice = "Visibility " + onOff(msg.Visible)
		return v, nil

	case messages.CatalogRefreshed:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.catalogCount = msg.Count
		v.notice = fmt.Sprintf("Catalog reloaded: %d problems", msg.Count)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	if i := v.keymap.PresetIndex(keyStr); i >= 0 {
		v.selected = i
		return v, v.setThreshold(domain.ThresholdPresets[i].Value)
	}

	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(keyStr, v.keymap.Down):
		if v.selected < len(domain.ThresholdPresets)-1 {
			v.selected++
		}
	case keymap.Matches(keyStr, v.keymap.Select):
		if v.selected >= 0 {
			return v, v.setThreshold(domain.ThresholdPresets[v.selected].Value)
		}
	case keymap.Matches(keyStr, v.keymap.ToggleVisibility):
		return v, v.toggleVisibility()
	case keymap.Matches(keyStr, v.keymap.Refresh):
		return v, v.refreshCatalog()
	}
	return v, nil
}

func (v *View) setThreshold(value float64) tea.Cmd {
	svc := v.service
	return func() tea.Msg {
		if svc == nil {
			return messages.ThresholdChanged{Err: ErrNoSettingsService}
		}
		return messages.ThresholdChanged{Threshold: value, Err: svc.SetThreshold(value)}
	}
}

func (v *View) toggleVisibility() tea.Cmd {
	svc := v.service
	return func() tea.Msg {
		if svc == nil {
			return messages.VisibilityToggled{Err: ErrNoSettingsService}
		}
		visible, err := svc.ToggleVisibility()
		return messages.VisibilityToggled{Visible: visible, Err: err}
	}
}

func (v *View) refreshCatalog() tea.Cmd {
	catalog, ctx := v.catalog, v.ctx
	return func() tea.Msg {
		if catalog == nil {
			return messages.CatalogRefreshed{Err: errors.New("catalog service not configured")}
		}
		n, err := catalog.Refresh(ctx)
		return messages.CatalogRefreshed{Count: n, Err: err}
	}
}

// View renders the settings view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Subtitle.Render("Similarity threshold"))
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  current %d%%", domain.Percent(v.settings.Threshold))))
	b.WriteString("\n")
	for i, p := range domain.ThresholdPresets {
		label := fmt.Sprintf("[%d] %-9s %d%%", i+1, p.Name, domain.Percent(p.Value))
		if i == v.selected {
			b.WriteString("> " + v.styles.Selected.Render(label))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(label))
		}
		if preset, ok := domain.PresetFor(v.settings.Threshold); ok && preset.Name == p.Name {
			b.WriteString(v.styles.Success.Render("  active"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render("Search visible:     " + onOff(v.settings.Visible)))
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render(fmt.Sprintf("Catalog problems:   %d", v.catalogCount)))
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render(fmt.Sprintf("Last result count:  %d", v.settings.LastResultCount)))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	case v.notice != "":
		b.WriteString(v.styles.Success.Render(v.notice))
		b.WriteString("\n")
	}

	b.WriteString(v.styles.Help.Render("[1-4] Preset  [Enter] Apply  [v] Visibility  [r] Reload catalog  [Esc] Back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Settings returns the settings last loaded or changed.
func (v *View) Settings() domain.Settings {
	return v.settings
}

// CatalogCount returns the last known catalog size.
func (v *View) CatalogCount() int {
	return v.catalogCount
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

func presetIndex(threshold float64) int {
	preset, ok := domain.PresetFor(threshold)
	if !ok {
		return -1
	}
	for i, p := range domain.ThresholdPresets {
		if p.Name == preset.Name {
			return i
		}
	}
	return -1
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
