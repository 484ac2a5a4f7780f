// Package tui implements the interactive catalog browser. It lists the
// components of a library and shows the effective schema of the selected
// component for each variant of its catalog.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/polymorph/internal/catalog"
	"github.com/alexisbeaulieu97/polymorph/internal/component"
	"github.com/alexisbeaulieu97/polymorph/internal/resolver"
)

// Model is the Bubbletea state of the browser.
type Model struct {
	components []*component.Shell

	cursor   int
	variant  int
	variants []catalog.PrimitiveID

	effective resolver.Effective
	err       error

	keys     keyMap
	help     help.Model
	showHelp bool
	quitting bool

	width  int
	height int
}

// NewModel constructs a browser over shells. The first component is
// selected with its default variant.
func NewModel(shells []*component.Shell) Model {
	m := Model{
		components: shells,
		keys:       defaultKeyMap(),
		help:       help.New(),
		width:      80,
		height:     24,
	}
	m.selectComponent(0)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the selected component, or nil when there is none.
func (m Model) Selected() *component.Shell {
	if m.cursor < 0 || m.cursor >= len(m.components) {
		return nil
	}
	return m.components[m.cursor]
}

// Variant returns the variant whose schema is displayed.
func (m Model) Variant() catalog.PrimitiveID {
	if m.variant < 0 || m.variant >= len(m.variants) {
		return ""
	}
	return m.variants[m.variant]
}

// Effective returns the displayed effective schema.
func (m Model) Effective() resolver.Effective {
	return m.effective
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) selectComponent(index int) {
	m.cursor = index
	shell := m.Selected()
	if shell == nil {
		m.variants = nil
		m.variant = 0
		m.effective = resolver.Effective{}
		return
	}

	m.variants = shell.Catalog().IDs()
	m.variant = 0
	for i, id := range m.variants {
		if id == shell.Default() {
			m.variant = i
			break
		}
	}
	m.resolve()
}

func (m *Model) selectVariant(index int) {
	if len(m.variants) == 0 {
		return
	}
	n := len(m.variants)
	m.variant = ((index % n) + n) % n
	m.resolve()
}

func (m *Model) resolve() {
	shell := m.Selected()
	if shell == nil {
		return
	}
	m.effective, m.err = shell.Resolve(m.Variant())
}
