package config

import "github.com/alexisbeaulieu97/polymorph/internal/catalog"

// Colours accepted by the "color" option of the default components. They
// match the palette of the terminal renderer.
var Colours = []string{"primary", "secondary", "success", "warning", "danger", "info", "neutral"}

// DefaultDocument describes the library used when no document is supplied:
// the builtin primitives plus a polymorphic "text" and "action" component.
func DefaultDocument() *Document {
	color := Attribute{Type: "enum", Values: Colours}
	return &Document{
		Version:        "1.0",
		IncludeBuiltin: true,
		Components: []Component{
			{
				Name:        "text",
				Description: "Inline text that can render as any builtin primitive",
				Default:     string(catalog.Span),
				Options:     AttributeMap{"color": color},
			},
			{
				Name:        "action",
				Description: "Clickable element, a button unless told otherwise",
				Default:     string(catalog.Button),
				Options: AttributeMap{
					"color": color,
					"size":  {Type: "enum", Values: []string{"sm", "md", "lg"}, Default: "md"},
				},
			},
		},
	}
}

// Default validates and builds DefaultDocument.
func Default(opts BuildOptions) (*Library, error) {
	doc := DefaultDocument()
	if err := ValidateDocument(doc, catalog.Builtin()); err != nil {
		return nil, err
	}
	return Build(doc, opts)
}
