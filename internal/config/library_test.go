package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/polymorph/internal/catalog"
	"github.com/alexisbeaulieu97/polymorph/internal/component"
	"github.com/alexisbeaulieu97/polymorph/internal/render"
	polyerrors "github.com/alexisbeaulieu97/polymorph/pkg/errors"
)

func TestBuildLibrary(t *testing.T) {
	t.Parallel()

	doc, err := Parse("doc.yaml", []byte(validDocument))
	require.NoError(t, err)

	lib, err := Build(doc, BuildOptions{Renderer: render.Tree{}})
	require.NoError(t, err)
	require.Equal(t, []catalog.PrimitiveID{"anchor", "heading1", "span"}, lib.Catalog().IDs())

	text, err := lib.Component("text")
	require.NoError(t, err)
	require.Equal(t, catalog.PrimitiveID("span"), text.Default())

	eff, err := text.Resolve("anchor")
	require.NoError(t, err)
	color, _ := eff.Schema.Lookup("color")
	require.Equal(t, "enum(primary|danger)", color.Descriptor.String())

	inst, err := text.Construct(component.Request{})
	require.NoError(t, err)
	require.Equal(t, "primary", inst.Attributes.String("color"))

	_, err = text.Construct(component.Request{Variant: "heading1", Attributes: map[string]any{"href": "/x"}})
	require.ErrorIs(t, err, polyerrors.ErrSchemaViolation)

	node, err := text.Render(context.Background(), component.Request{
		Variant:    "anchor",
		Attributes: map[string]any{"href": "/x"},
		Content:    render.Text("docs"),
	})
	require.NoError(t, err)
	require.Equal(t, `<anchor color="primary" href="/x">docs</anchor>`, node.(*render.Element).String())

	_, err = lib.Component("missing")
	require.Error(t, err)
}

func TestBuildLibraryWithNestedComponents(t *testing.T) {
	t.Parallel()

	doc, err := Parse("doc.yaml", []byte(`version: "1.0"
primitives:
  span: {}
components:
  - name: text
    default: span
    nested: true
    options:
      tone: {type: enum, values: [soft, loud]}
  - name: card
    default: text
    options:
      elevated: {type: bool, default: false}
`))
	require.NoError(t, err)

	lib, err := Build(doc, BuildOptions{})
	require.NoError(t, err)
	require.True(t, lib.Catalog().IsMember("text"))

	names := make([]string, 0)
	for _, shell := range lib.Components() {
		names = append(names, shell.Name())
	}
	require.Equal(t, []string{"text", "card"}, names)

	card, err := lib.Component("card")
	require.NoError(t, err)
	inst, err := card.Construct(component.Request{Attributes: map[string]any{"tone": "loud"}})
	require.NoError(t, err)
	require.Equal(t, "loud", inst.Attributes.String("tone"))
	require.Equal(t, false, inst.Attributes.Bool("elevated"))

	text, err := lib.Component("text")
	require.NoError(t, err)
	require.False(t, text.Catalog().IsMember("text"), "a component never sees itself as a primitive")
}

func TestBuildLibraryWithBuiltins(t *testing.T) {
	t.Parallel()

	doc, err := Parse("doc.yaml", []byte(`version: "1.0"
include_builtin: true
primitives:
  badge:
    count: {type: number}
components:
  - name: link
    default: anchor
`))
	require.NoError(t, err)

	lib, err := Build(doc, BuildOptions{})
	require.NoError(t, err)
	require.True(t, lib.Catalog().IsMember(catalog.Anchor))
	require.True(t, lib.Catalog().IsMember("badge"))

	doc.Primitives["anchor"] = AttributeMap{}
	_, err = Build(doc, BuildOptions{})
	require.ErrorContains(t, err, "shadows a builtin")
	var validationErr *polyerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "primitives.anchor", validationErr.Field)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "polymorph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validDocument), 0o644))

	lib, err := Load(path, BuildOptions{})
	require.NoError(t, err)
	require.Len(t, lib.Components(), 1)

	_, err = Build(nil, BuildOptions{})
	require.Error(t, err)
}

func TestLoadExampleDocument(t *testing.T) {
	t.Parallel()

	lib, err := Load(filepath.Join("..", "..", "examples", "polymorph.yaml"), BuildOptions{Renderer: render.Tree{}})
	require.NoError(t, err)
	require.True(t, lib.Catalog().IsMember("badge"))
	require.True(t, lib.Catalog().IsMember("text"))

	link, err := lib.Component("link")
	require.NoError(t, err)
	eff, err := link.Resolve("")
	require.NoError(t, err)
	require.Equal(t, []string{"target"}, eff.Shadowed)

	label, err := lib.Component("label")
	require.NoError(t, err)
	inst, err := label.Construct(component.Request{Attributes: map[string]any{"color": "danger"}})
	require.NoError(t, err)
	require.Equal(t, catalog.PrimitiveID("text"), inst.Variant)
	require.Equal(t, "danger", inst.Attributes.String("color"))
	require.Equal(t, "soft", inst.Attributes.String("tone"))
}

const nestedDocument = `version: "1.0"
primitives:
  anchor:
    href: {type: string}
  span: {}
components:
  - name: link
    default: anchor
    nested: true
    options:
      tone: {type: enum, values: [soft, loud], default: soft}
  - name: card
    default: link
    options:
      elevated: {type: bool, default: false}
`

func TestRenderThroughNestedComponent(t *testing.T) {
	t.Parallel()

	doc, err := Parse("doc.yaml", []byte(nestedDocument))
	require.NoError(t, err)
	lib, err := Build(doc, BuildOptions{Renderer: render.Tree{}})
	require.NoError(t, err)

	card, err := lib.Component("card")
	require.NoError(t, err)

	req := component.Request{
		Attributes: map[string]any{"href": "/x", "tone": "loud"},
		Content:    render.Text("Docs"),
	}
	node, err := card.Render(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, `<anchor href="/x" tone="loud">Docs</anchor>`, node.(*render.Element).String())

	req.Variant = "span"
	req.Attributes = nil
	node, err = card.Render(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, `<span elevated="false">Docs</span>`, node.(*render.Element).String())
}

func TestRenderThroughNestedComponentWithTerminal(t *testing.T) {
	t.Parallel()

	doc, err := Parse("doc.yaml", []byte(nestedDocument))
	require.NoError(t, err)
	lib, err := Build(doc, BuildOptions{Renderer: render.NewTerminal(render.DefaultTheme())})
	require.NoError(t, err)

	req := component.Request{Attributes: map[string]any{"href": "/x"}, Content: render.Text("Docs")}
	for _, name := range []string{"link", "card"} {
		shell, err := lib.Component(name)
		require.NoError(t, err)
		node, err := shell.Render(context.Background(), req)
		require.NoError(t, err)
		require.Contains(t, node, "Docs (/x)", name)
	}
}
