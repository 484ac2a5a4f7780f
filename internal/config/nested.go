package config

import (
	"context"

	"github.com/alexisbeaulieu97/polymorph/internal/catalog"
	"github.com/alexisbeaulieu97/polymorph/internal/component"
	"github.com/alexisbeaulieu97/polymorph/internal/render"
)

// nestedRenderer routes primitives that are nested components to their own
// shell and everything else to the base renderer. Shells are registered
// while the library is built and only read afterwards.
type nestedRenderer struct {
	base   render.Renderer
	shells map[catalog.PrimitiveID]*component.Shell
}

func newNestedRenderer(base render.Renderer) *nestedRenderer {
	return &nestedRenderer{base: base, shells: make(map[catalog.PrimitiveID]*component.Shell)}
}

func (r *nestedRenderer) register(id catalog.PrimitiveID, shell *component.Shell) {
	r.shells[id] = shell
}

// Render implements render.Renderer. For a nested component the attributes
// are split into the component's own options and its residual attributes.
// Attributes outside the nested component's schema belong to the outer
// component and are not forwarded.
func (r *nestedRenderer) Render(ctx context.Context, id catalog.PrimitiveID, attrs render.Attributes, content render.Content) (render.Node, error) {
	shell, ok := r.shells[id]
	if !ok {
		return r.base.Render(ctx, id, attrs, content)
	}

	accepted := shell.Schema()
	own := shell.Own()
	req := component.Request{
		Options:    make(map[string]any),
		Attributes: make(map[string]any),
		Content:    content,
	}
	for _, key := range attrs.Keys() {
		if !accepted.Has(key) {
			continue
		}
		value, _ := attrs.Get(key)
		if own.Has(key) {
			req.Options[key] = value
		} else {
			req.Attributes[key] = value
		}
	}
	return shell.Render(ctx, req)
}
