package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/polymorph/internal/catalog"
)

// Element is a virtual node produced by the Tree renderer.
type Element struct {
	Primitive  catalog.PrimitiveID
	Attributes Attributes
	Text       string
	Children   []Node
}

// String renders the element in a compact, tag-like notation, e.g.
// <anchor href="/x">docs</anchor>.
func (e *Element) String() string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(string(e.Primitive))
	for _, k := range e.Attributes.Keys() {
		v, _ := e.Attributes.Get(k)
		fmt.Fprintf(&b, " %s=%q", k, fmt.Sprint(v))
	}
	b.WriteString(">")
	b.WriteString(e.Text)
	for _, child := range e.Children {
		fmt.Fprint(&b, child)
	}
	b.WriteString("</")
	b.WriteString(string(e.Primitive))
	b.WriteString(">")
	return b.String()
}

// Tree renders primitives into *Element values.
type Tree struct{}

// Render implements Renderer.
func (Tree) Render(ctx context.Context, id catalog.PrimitiveID, attrs Attributes, content Content) (Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Element{
		Primitive:  id,
		Attributes: attrs,
		Text:       content.Text,
		Children:   content.Clone().Children,
	}, nil
}
