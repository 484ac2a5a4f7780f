// Package component implements the reusable component shell: a component
// whose rendered primitive is chosen per construction by a variant, and whose
// legal attributes are the effective schema of that variant.
//
// Every construction runs the same one-shot pipeline:
//
//	Default → Resolve → Validate → Emit
//
// The variant is defaulted before resolution, the effective schema is
// resolved against the catalog, the supplied attributes are validated
// against it, and a single immutable Instance is emitted. Validation stops
// at the first violation; no partial instance is ever produced.
package component

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/polymorph/internal/catalog"
	"github.com/alexisbeaulieu97/polymorph/internal/logger"
	"github.com/alexisbeaulieu97/polymorph/internal/render"
	"github.com/alexisbeaulieu97/polymorph/internal/resolver"
	"github.com/alexisbeaulieu97/polymorph/internal/schema"
	polyerrors "github.com/alexisbeaulieu97/polymorph/pkg/errors"
)

// Config describes a component shell.
type Config struct {
	Name    string
	Catalog *catalog.Catalog
	// Own holds the component's own options. They take precedence over
	// same-named native attributes of every primitive.
	Own schema.Schema
	// Default is substituted when a request names no variant.
	Default  catalog.PrimitiveID
	Renderer render.Renderer
	Logger   *logger.Logger
}

// Request is the input of one construction.
type Request struct {
	// Variant selects the primitive. Empty means "use the default".
	Variant catalog.PrimitiveID
	// Options carries values for the component's own options.
	Options map[string]any
	// Attributes carries the residual attributes, validated against the
	// effective schema of the variant.
	Attributes map[string]any
	Content    render.Content
}

// Instance is the validated result of one construction.
type Instance struct {
	Variant    catalog.PrimitiveID
	Attributes render.Attributes
	Content    render.Content
}

// Shell is a component whose primitive is selected per construction.
// A Shell holds no mutable state besides its resolution cache and is safe
// for concurrent use.
type Shell struct {
	name     string
	catalog  *catalog.Catalog
	own      schema.Schema
	def      catalog.PrimitiveID
	renderer render.Renderer
	cache    *resolver.Cache
	log      *logger.Logger
}

// New validates cfg and returns a Shell. The default variant must be a
// catalog member.
func New(cfg Config) (*Shell, error) {
	if cfg.Name == "" {
		return nil, polyerrors.NewValidationError("name", "component name is required", nil)
	}
	if cfg.Catalog == nil {
		return nil, polyerrors.NewValidationError("catalog", "catalog is required", nil)
	}
	if cfg.Default == "" {
		return nil, polyerrors.NewValidationError("default", "default variant is required", nil)
	}
	if !cfg.Catalog.IsMember(cfg.Default) {
		return nil, polyerrors.NewValidationError("default",
			fmt.Sprintf("component %q: default variant is not in the catalog", cfg.Name),
			polyerrors.NewUnknownPrimitiveError(string(cfg.Default)))
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Shell{
		name:     cfg.Name,
		catalog:  cfg.Catalog,
		own:      cfg.Own,
		def:      cfg.Default,
		renderer: cfg.Renderer,
		cache:    resolver.NewCache(cfg.Catalog, cfg.Own),
		log:      log.WithFields(map[string]any{"component": cfg.Name}),
	}, nil
}

// Name returns the component name.
func (s *Shell) Name() string { return s.name }

// Default returns the default variant.
func (s *Shell) Default() catalog.PrimitiveID { return s.def }

// Own returns the component's own option schema.
func (s *Shell) Own() schema.Schema { return s.own }

// Catalog returns the catalog variants are resolved against.
func (s *Shell) Catalog() *catalog.Catalog { return s.catalog }

// Resolve returns the effective schema for variant, defaulting it first.
func (s *Shell) Resolve(variant catalog.PrimitiveID) (resolver.Effective, error) {
	return s.cache.Resolve(s.variantOrDefault(variant))
}

// Schema returns the effective schema of the default variant, which lets a
// shell be registered as a nested primitive in another catalog.
func (s *Shell) Schema() schema.Schema {
	eff, err := s.cache.Resolve(s.def)
	if err != nil {
		// New guarantees the default is a member of an immutable catalog.
		panic(err)
	}
	return eff.Schema
}

// Construct runs Default → Resolve → Validate → Emit and returns the
// validated instance without rendering it.
func (s *Shell) Construct(req Request) (Instance, error) {
	variant := s.variantOrDefault(req.Variant)
	log := s.log.With("variant", string(variant))

	eff, err := s.cache.Resolve(variant)
	if err != nil {
		log.Debug("variant rejected")
		return Instance{}, err
	}

	if err := validate(eff, s.own, req.Options, req.Attributes); err != nil {
		if log.DebugEnabled() {
			log.WithFields(map[string]any{"error": err.Error()}).Debug("attributes rejected")
		}
		return Instance{}, err
	}

	inst := Instance{
		Variant:    variant,
		Attributes: render.NewAttributes(merge(eff.Schema, req.Options, req.Attributes)),
		Content:    req.Content.Clone(),
	}
	log.Debug("instance constructed")
	return inst, nil
}

// Render constructs an instance and hands it to the configured renderer.
// Construction errors are reported before a missing renderer.
func (s *Shell) Render(ctx context.Context, req Request) (render.Node, error) {
	inst, err := s.Construct(req)
	if err != nil {
		return nil, err
	}

	if s.renderer == nil {
		return nil, polyerrors.NewValidationError("renderer", fmt.Sprintf("component %q has no renderer", s.name), nil)
	}

	node, err := s.renderer.Render(ctx, inst.Variant, inst.Attributes, inst.Content)
	if err != nil {
		s.log.Error(err, "render failed")
		return nil, polyerrors.NewRenderError(string(inst.Variant), err)
	}
	return node, nil
}

func (s *Shell) variantOrDefault(variant catalog.PrimitiveID) catalog.PrimitiveID {
	if variant == "" {
		return s.def
	}
	return variant
}

// merge combines the validated values and fills in declared defaults for
// absent optional attributes.
func merge(eff schema.Schema, options, attrs map[string]any) map[string]any {
	out := make(map[string]any, eff.Len())
	for k, v := range attrs {
		out[k] = v
	}
	for k, v := range options {
		out[k] = v
	}
	for _, attr := range eff.Attributes() {
		if _, ok := out[attr.Name]; !ok && attr.HasDefault() {
			out[attr.Name] = attr.Default
		}
	}
	return out
}
