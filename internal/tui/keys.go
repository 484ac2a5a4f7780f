package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	PrevVar key.Binding
	NextVar key.Binding
	Reset   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous component")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next component")),
		PrevVar: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "previous variant")),
		NextVar: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next variant")),
		Reset:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "default variant")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextVar, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PrevVar, k.NextVar, k.Reset},
		{k.Help, k.Quit},
	}
}
