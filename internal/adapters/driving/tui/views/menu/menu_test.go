package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui/styles"
)

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles())

	require.NotNil(t, view)
	assert.Len(t, view.Items(), 3)
	assert.Equal(t, 0, view.Selected())
	assert.Nil(t, view.Init())
}

func TestView_NotReady(t *testing.T) {
	assert.Equal(t, "Initialising...", NewView(nil).View())
}

func TestView_Update_Navigate(t *testing.T) {
	view := NewView(nil)

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, view.Selected())
}

func TestView_Update_EnterChangesView(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewSearch}, cmd())
}

func TestView_Update_QuitItem(t *testing.T) {
	view := NewView(nil)
	view.selected = 2

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_SetSearchVisible(t *testing.T) {
	view := NewView(nil)
	view.selected = 2

	view.SetSearchVisible(false)

	require.Len(t, view.Items(), 2)
	assert.Equal(t, "Settings", view.Items()[0].Label)
	assert.Equal(t, 1, view.Selected())

	view.SetSearchVisible(true)
	assert.Equal(t, "Find matches", view.Items()[0].Label)
}

func TestView_View(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(100, 40)

	out := view.View()

	assert.Contains(t, out, "leetlens")
	assert.Contains(t, out, "Find matches")
	assert.Contains(t, out, "Settings")
}
