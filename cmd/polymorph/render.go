package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/polymorph/internal/catalog"
	"github.com/alexisbeaulieu97/polymorph/internal/component"
	"github.com/alexisbeaulieu97/polymorph/internal/render"
	"github.com/alexisbeaulieu97/polymorph/internal/schema"
)

type renderOptions struct {
	variant    string
	attributes []string
	options    []string
	content    string
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <component>",
		Short: "Construct a component and render it to the terminal",
		Example: `  polymorph render text --variant anchor --attr href=/docs --content Docs
  polymorph render action --opt color=danger --opt size=lg --content Delete`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.variant, "variant", "", "Primitive to render as (defaults to the component's default variant)")
	cmd.Flags().StringArrayVar(&opts.attributes, "attr", nil, "Attribute as key=value (repeatable)")
	cmd.Flags().StringArrayVar(&opts.options, "opt", nil, "Component option as key=value (repeatable)")
	cmd.Flags().StringVar(&opts.content, "content", "", "Text content of the rendered element")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, opts *renderOptions, name string) error {
	lib, err := loadLibrary(cmd, rootFlags, render.NewTerminal(render.DefaultTheme()))
	if err != nil {
		return err
	}

	shell, err := lib.Component(name)
	if err != nil {
		return newCommandError("render", name, err, "Run 'polymorph catalog' and check the component name.")
	}

	rawAttrs, err := parseAssignments("attr", opts.attributes)
	if err != nil {
		return newCommandError("render", name, err, "Pass attributes as --attr key=value.")
	}
	rawOpts, err := parseAssignments("opt", opts.options)
	if err != nil {
		return newCommandError("render", name, err, "Pass options as --opt key=value.")
	}

	eff, err := shell.Resolve(catalog.PrimitiveID(opts.variant))
	if err != nil {
		return newCommandError("render", name, err, "Run 'polymorph catalog' to list the available primitives.")
	}

	node, err := shell.Render(cmd.Context(), component.Request{
		Variant:    eff.Variant,
		Options:    typedValues(shell.Own(), rawOpts),
		Attributes: typedValues(eff.Schema, rawAttrs),
		Content:    render.Text(opts.content),
	})
	if err != nil {
		return newCommandError("render", fmt.Sprintf("%s as %s", name, eff.Variant), err,
			fmt.Sprintf("Run 'polymorph resolve %s --variant %s' to see the accepted attributes.", name, eff.Variant))
	}

	fmt.Fprintln(cmd.OutOrStdout(), node)
	return nil
}

// typedValues converts raw flag values using the descriptors of s. Values
// that are unknown to s or fail to parse stay strings so the shell reports
// the violation.
func typedValues(s schema.Schema, raw map[string]string) map[string]any {
	out := make(map[string]any, len(raw))
	for key, value := range raw {
		out[key] = value
		attr, ok := s.Lookup(key)
		if !ok {
			continue
		}
		if parsed, err := attr.Descriptor.Parse(value); err == nil {
			out[key] = parsed
		}
	}
	return out
}
