package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/polymorph/internal/catalog"
	"github.com/alexisbeaulieu97/polymorph/internal/component"
	"github.com/alexisbeaulieu97/polymorph/internal/logger"
	"github.com/alexisbeaulieu97/polymorph/internal/render"
)

// Library is the catalog and component shells described by a Document.
type Library struct {
	catalog    *catalog.Catalog
	order      []string
	components map[string]*component.Shell
}

// BuildOptions supplies the collaborators shared by every component.
type BuildOptions struct {
	Renderer render.Renderer
	Logger   *logger.Logger
}

// Build turns a validated document into a Library. Components are built in
// document order; a nested component becomes a primitive of the catalog
// seen by the components declared after it, and rendering that primitive
// renders the nested component itself.
func Build(doc *Document, opts BuildOptions) (*Library, error) {
	if doc == nil {
		return nil, fmt.Errorf("build library: document is nil")
	}

	var b *catalog.Builder
	if doc.IncludeBuiltin {
		b = catalog.From(catalog.Builtin())
	} else {
		b = catalog.NewBuilder()
	}
	for _, id := range sortedPrimitiveIDs(doc.Primitives) {
		if doc.IncludeBuiltin && catalog.Builtin().IsMember(catalog.PrimitiveID(id)) {
			return nil, shadowsBuiltinError(id)
		}
		s, err := doc.Primitives[id].Schema()
		if err != nil {
			return nil, fmt.Errorf("build library: primitive %q: %w", id, err)
		}
		b.Add(catalog.PrimitiveID(id), s)
	}

	cat, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("build library: %w", err)
	}

	lib := &Library{
		catalog:    cat,
		components: make(map[string]*component.Shell, len(doc.Components)),
	}

	renderer := opts.Renderer
	var nested *nestedRenderer
	if opts.Renderer != nil {
		nested = newNestedRenderer(opts.Renderer)
		renderer = nested
	}

	for _, decl := range doc.Components {
		own, err := decl.Options.Schema()
		if err != nil {
			return nil, fmt.Errorf("build library: component %q: %w", decl.Name, err)
		}

		shell, err := component.New(component.Config{
			Name:     decl.Name,
			Catalog:  lib.catalog,
			Own:      own,
			Default:  catalog.PrimitiveID(decl.Default),
			Renderer: renderer,
			Logger:   opts.Logger,
		})
		if err != nil {
			return nil, fmt.Errorf("build library: %w", err)
		}

		if decl.Nested {
			next, err := catalog.From(lib.catalog).AddNested(catalog.PrimitiveID(decl.Name), shell).Build()
			if err != nil {
				return nil, fmt.Errorf("build library: %w", err)
			}
			lib.catalog = next
			if nested != nil {
				nested.register(catalog.PrimitiveID(decl.Name), shell)
			}
		}

		lib.order = append(lib.order, decl.Name)
		lib.components[decl.Name] = shell
	}

	return lib, nil
}

// Load parses the document at path and builds its Library.
func Load(path string, opts BuildOptions) (*Library, error) {
	doc, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return Build(doc, opts)
}

// Catalog returns the final catalog, including nested components.
func (l *Library) Catalog() *catalog.Catalog {
	return l.catalog
}

// Component returns the shell registered under name.
func (l *Library) Component(name string) (*component.Shell, error) {
	shell, ok := l.components[name]
	if !ok {
		return nil, fmt.Errorf("component %q not found", name)
	}
	return shell, nil
}

// Components returns every shell in document order.
func (l *Library) Components() []*component.Shell {
	out := make([]*component.Shell, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, l.components[name])
	}
	return out
}
