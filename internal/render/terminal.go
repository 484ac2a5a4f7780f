package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/polymorph/internal/catalog"
)

// Terminal renders primitives to styled terminal strings.
type Terminal struct {
	theme Theme
}

// NewTerminal returns a Terminal renderer using theme.
func NewTerminal(theme Theme) *Terminal {
	return &Terminal{theme: theme}
}

// Render implements Renderer. The returned node is a string.
func (t *Terminal) Render(ctx context.Context, id catalog.PrimitiveID, attrs Attributes, content Content) (Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if attrs.Bool("hidden") {
		return "", nil
	}

	body := contentString(content)
	style := t.styleFor(id, attrs)

	switch id {
	case catalog.Anchor:
		if href := attrs.String("href"); href != "" {
			if body == "" {
				body = href
			} else {
				body = fmt.Sprintf("%s (%s)", body, href)
			}
		}
	case catalog.Image:
		body = fmt.Sprintf("[image: %s]", attrs.String("alt"))
	case catalog.Button:
		if attrs.Bool("disabled") {
			style = style.Faint(true)
		}
	}

	return style.Render(body), nil
}

func (t *Terminal) styleFor(id catalog.PrimitiveID, attrs Attributes) lipgloss.Style {
	var style lipgloss.Style
	switch id {
	case catalog.Heading1, catalog.Heading2, catalog.Heading3,
		catalog.Heading4, catalog.Heading5, catalog.Heading6:
		level := int(id[len(id)-1] - '1')
		style = t.theme.Headings[level]
	case catalog.Anchor:
		style = t.theme.Link
	case catalog.Code:
		style = t.theme.Code
	case catalog.Button:
		style = t.theme.Button
	default:
		style = t.theme.Body
	}

	if colour, ok := t.theme.Colour(attrs.String("color")); ok {
		style = style.Foreground(colour.Base)
		if id == catalog.Button {
			style = style.BorderForeground(colour.Muted)
		}
	}
	return style
}

func contentString(c Content) string {
	if len(c.Children) == 0 {
		return c.Text
	}
	parts := make([]string, 0, len(c.Children)+1)
	if c.Text != "" {
		parts = append(parts, c.Text)
	}
	for _, child := range c.Children {
		parts = append(parts, fmt.Sprint(child))
	}
	return strings.Join(parts, " ")
}
