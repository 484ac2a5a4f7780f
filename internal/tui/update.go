package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.selectComponent(m.cursor - 1)
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.components)-1 {
			m.selectComponent(m.cursor + 1)
		}
	case key.Matches(msg, m.keys.NextVar):
		m.selectVariant(m.variant + 1)
	case key.Matches(msg, m.keys.PrevVar):
		m.selectVariant(m.variant - 1)
	case key.Matches(msg, m.keys.Reset):
		m.selectComponent(m.cursor)
	}
	return m, nil
}
