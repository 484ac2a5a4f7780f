package catalog

import (
	"sync"

	"github.com/alexisbeaulieu97/polymorph/internal/schema"
)

// Identifiers of the builtin primitives.
const (
	Anchor    PrimitiveID = "anchor"
	Heading1  PrimitiveID = "heading-1"
	Heading2  PrimitiveID = "heading-2"
	Heading3  PrimitiveID = "heading-3"
	Heading4  PrimitiveID = "heading-4"
	Heading5  PrimitiveID = "heading-5"
	Heading6  PrimitiveID = "heading-6"
	Span      PrimitiveID = "span"
	Paragraph PrimitiveID = "paragraph"
	Button    PrimitiveID = "button"
	Code      PrimitiveID = "code"
	Image     PrimitiveID = "image"
)

var (
	builtinOnce sync.Once
	builtin     *Catalog
)

// Builtin returns the process-wide catalog of common primitives. It is built
// on first use and shared thereafter.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		common := []schema.Attribute{
			{Name: "id", Descriptor: schema.String()},
			{Name: "title", Descriptor: schema.String()},
			{Name: "hidden", Descriptor: schema.Bool()},
		}
		with := func(extra ...schema.Attribute) []schema.Attribute {
			return append(append([]schema.Attribute{}, common...), extra...)
		}

		b := NewBuilder().
			AddAttributes(Anchor, with(
				schema.Attribute{Name: "href", Descriptor: schema.String()},
				schema.Attribute{Name: "target", Descriptor: schema.Enum("_self", "_blank", "_parent", "_top")},
				schema.Attribute{Name: "rel", Descriptor: schema.String()},
			)...).
			AddAttributes(Span, with()...).
			AddAttributes(Paragraph, with()...).
			AddAttributes(Code, with(
				schema.Attribute{Name: "language", Descriptor: schema.String()},
			)...).
			AddAttributes(Button, with(
				schema.Attribute{Name: "type", Descriptor: schema.Enum("button", "submit", "reset"), Default: "button"},
				schema.Attribute{Name: "disabled", Descriptor: schema.Bool()},
			)...).
			AddAttributes(Image, with(
				schema.Attribute{Name: "src", Descriptor: schema.String(), Required: true},
				schema.Attribute{Name: "alt", Descriptor: schema.String(), Required: true},
				schema.Attribute{Name: "width", Descriptor: schema.Number()},
				schema.Attribute{Name: "height", Descriptor: schema.Number()},
			)...)

		for _, id := range []PrimitiveID{Heading1, Heading2, Heading3, Heading4, Heading5, Heading6} {
			b.AddAttributes(id, with()...)
		}

		c, err := b.Build()
		if err != nil {
			panic(err)
		}
		builtin = c
	})

	return builtin
}
