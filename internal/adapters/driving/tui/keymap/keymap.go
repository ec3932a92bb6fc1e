// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Quit key.Binding
	Back key.Binding

	// Submit runs a search on the query text. Enter is left to the text
	// area so pasted problem statements can keep their line breaks.
	Submit key.Binding

	Up     key.Binding
	Down   key.Binding
	Select key.Binding

	// NewSearch clears the query from the results view.
	NewSearch key.Binding

	// Presets select threshold presets in order: loose, balanced, strict, exact.
	Presets []key.Binding

	// ToggleVisibility flips the display.visible setting.
	ToggleVisibility key.Binding

	// Refresh reloads the catalog from its sources.
	Refresh key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "find matches"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		NewSearch: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new search"),
		),
		Presets: []key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "loose")),
			key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "balanced")),
			key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "strict")),
			key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "exact")),
		},
		ToggleVisibility: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "toggle visibility"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh catalog"),
		),
	}
}

// InputHelp returns keybindings shown while typing a query.
func (k *KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Back}
}

// ResultsHelp returns keybindings for the results view.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.NewSearch, k.Up, k.Down, k.Back}
}

// SettingsHelp returns keybindings for the settings view.
func (k *KeyMap) SettingsHelp() []key.Binding {
	return []key.Binding{k.Select, k.ToggleVisibility, k.Refresh, k.Back}
}

// PresetIndex returns the preset position bound to keyStr, or -1.
func (k *KeyMap) PresetIndex(keyStr string) int {
	for i, b := range k.Presets {
		if Matches(keyStr, b) {
			return i
		}
	}
	return -1
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
