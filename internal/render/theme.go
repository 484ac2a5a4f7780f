package render

import "github.com/charmbracelet/lipgloss"

// ColourSet groups related colours for a semantic slot.
type ColourSet struct {
	Base  lipgloss.AdaptiveColor
	Muted lipgloss.AdaptiveColor
}

// Theme holds the styling used by the Terminal renderer. Themes are values;
// modifying a copy never affects the original.
type Theme struct {
	// Palette maps a semantic colour name (the values of a "color" option)
	// to its colour set.
	Palette  map[string]ColourSet
	Headings [6]lipgloss.Style
	Link     lipgloss.Style
	Code     lipgloss.Style
	Button   lipgloss.Style
	Body     lipgloss.Style
}

// Colour returns the colour set registered under name.
func (t Theme) Colour(name string) (ColourSet, bool) {
	c, ok := t.Palette[name]
	return c, ok
}

// DefaultTheme returns the default terminal theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := map[string]ColourSet{
		"primary":   {Base: ac("#3b82f6", "#60a5fa"), Muted: ac("#2563eb", "#1d4ed8")},
		"secondary": {Base: ac("#a855f7", "#c084fc"), Muted: ac("#7c3aed", "#6b21a8")},
		"success":   {Base: ac("#22c55e", "#4ade80"), Muted: ac("#16a34a", "#15803d")},
		"warning":   {Base: ac("#eab308", "#facc15"), Muted: ac("#ca8a04", "#a16207")},
		"danger":    {Base: ac("#ef4444", "#f87171"), Muted: ac("#dc2626", "#b91c1c")},
		"info":      {Base: ac("#06b6d4", "#22d3ee"), Muted: ac("#0891b2", "#0e7490")},
		"neutral":   {Base: ac("#64748b", "#94a3b8"), Muted: ac("#475569", "#334155")},
	}

	heading := lipgloss.NewStyle().Bold(true)
	return Theme{
		Palette: palette,
		Headings: [6]lipgloss.Style{
			heading.Underline(true).Foreground(palette["primary"].Base),
			heading.Foreground(palette["primary"].Base),
			heading.Foreground(palette["secondary"].Base),
			heading,
			heading.Faint(true),
			heading.Faint(true).Italic(true),
		},
		Link:   lipgloss.NewStyle().Underline(true).Foreground(palette["info"].Base),
		Code:   lipgloss.NewStyle().Foreground(palette["warning"].Base),
		Button: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Body:   lipgloss.NewStyle(),
	}
}
