package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/polymorph/internal/catalog"
)

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdateMovesBetweenComponents(t *testing.T) {
	t.Parallel()

	m := NewModel(defaultShells(t))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, "action", m.Selected().Name())
	require.Equal(t, catalog.Button, m.Variant())

	m, _ = press(t, m, runes("j"))
	require.Equal(t, "action", m.Selected().Name(), "cursor stops at the last component")

	m, _ = press(t, m, runes("k"))
	require.Equal(t, "text", m.Selected().Name())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, "text", m.Selected().Name())
}

func TestUpdateCyclesVariants(t *testing.T) {
	t.Parallel()

	m := NewModel(defaultShells(t))
	require.Equal(t, catalog.Span, m.Variant())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, catalog.Anchor, m.Variant())
	require.True(t, m.Effective().Schema.Has("href"))

	m, _ = press(t, m, runes("h"))
	require.Equal(t, catalog.Span, m.Variant())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = press(t, m, runes("d"))
	require.Equal(t, catalog.Span, m.Variant())
}

func TestUpdateHandlesHelpAndQuit(t *testing.T) {
	t.Parallel()

	m := NewModel(defaultShells(t))

	m, _ = press(t, m, runes("?"))
	require.True(t, m.showHelp)
	require.True(t, m.help.ShowAll)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.True(t, m.Quitting())
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdateHandlesWindowSize(t *testing.T) {
	t.Parallel()

	m := NewModel(defaultShells(t))
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Nil(t, cmd)
	m = updated.(Model)
	require.Equal(t, 120, m.width)
	require.Equal(t, 40, m.height)
}
