package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/polymorph/internal/resolver"
	"github.com/alexisbeaulieu97/polymorph/internal/schema"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{titleStyle.Render("Polymorph • Catalog browser")}

	if len(m.components) == 0 {
		sections = append(sections, variantStyle.Render("No components declared."), m.help.View(m.keys))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(m.renderComponentList()),
		" ",
		paneStyle.Render(m.renderDetail()),
	)
	sections = append(sections, body, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderComponentList() string {
	lines := []string{sectionStyle.UnsetMarginTop().Render("Components")}
	for i, shell := range m.components {
		if i == m.cursor {
			lines = append(lines, selectedItemStyle.Render(shell.Name()))
			continue
		}
		lines = append(lines, itemStyle.Render(shell.Name()))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDetail() string {
	shell := m.Selected()
	sections := []string{
		sectionStyle.UnsetMarginTop().Render(fmt.Sprintf("%s (default %s)", shell.Name(), shell.Default())),
		m.renderVariants(),
	}

	if m.err != nil {
		sections = append(sections, errorStyle.Render(m.err.Error()))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	sections = append(sections, sectionStyle.Render("Effective schema"), renderSchema(m.effective))
	if len(m.effective.Shadowed) > 0 {
		sections = append(sections, variantStyle.Render("overrides: "+strings.Join(m.effective.Shadowed, ", ")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderVariants() string {
	parts := make([]string, 0, len(m.variants))
	for i, id := range m.variants {
		if i == m.variant {
			parts = append(parts, selectedVariantStyle.Render(string(id)))
			continue
		}
		parts = append(parts, variantStyle.Render(string(id)))
	}
	return strings.Join(parts, " ")
}

func renderSchema(eff resolver.Effective) string {
	if eff.Schema.Len() == 0 {
		return variantStyle.Render("(no attributes)")
	}

	width := 0
	for _, name := range eff.Schema.Keys() {
		width = max(width, len(name))
	}

	lines := make([]string, 0, eff.Schema.Len())
	for _, attr := range eff.Schema.Attributes() {
		lines = append(lines, renderAttribute(eff, attr, width))
	}
	return strings.Join(lines, "\n")
}

func renderAttribute(eff resolver.Effective, attr schema.Attribute, width int) string {
	origin, _ := eff.Origin(attr.Name)
	style := nativeStyle
	if origin == resolver.OriginOwn {
		style = ownStyle
	}

	line := fmt.Sprintf("%-*s  %s", width, attr.Name, attr.Descriptor)
	if attr.HasDefault() {
		line += fmt.Sprintf(" = %v", attr.Default)
	}
	line = style.Render(line) + " " + variantStyle.Render(origin.String())
	if attr.Required {
		line += " " + requiredStyle.Render("required")
	}
	return line
}
