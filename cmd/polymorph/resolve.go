package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/polymorph/internal/catalog"
	"github.com/alexisbeaulieu97/polymorph/internal/resolver"
)

type resolveOptions struct {
	variant    string
	jsonOutput bool
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <component>",
		Short: "Show the effective attribute schema of a component for a variant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.variant, "variant", "", "Primitive to resolve (defaults to the component's default variant)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runResolve(cmd *cobra.Command, rootFlags *rootFlags, opts *resolveOptions, name string) error {
	lib, err := loadLibrary(cmd, rootFlags, nil)
	if err != nil {
		return err
	}

	shell, err := lib.Component(name)
	if err != nil {
		return newCommandError("resolve", name, err, "Run 'polymorph resolve' with a component declared in the catalog document.")
	}

	eff, err := shell.Resolve(catalog.PrimitiveID(opts.variant))
	if err != nil {
		return newCommandError("resolve", name, err, "Run 'polymorph catalog' to list the available primitives.")
	}

	if opts.jsonOutput {
		return renderEffectiveJSON(cmd, name, eff)
	}
	return renderEffectiveTable(cmd, name, eff)
}

func originOf(eff resolver.Effective) func(string) string {
	return func(key string) string {
		origin, _ := eff.Origin(key)
		return origin.String()
	}
}

func renderEffectiveTable(cmd *cobra.Command, name string, eff resolver.Effective) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s as %s\n\n", name, eff.Variant)

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ATTRIBUTE\tTYPE\tREQUIRED\tORIGIN\tDEFAULT")
	origin := originOf(eff)
	for _, attr := range eff.Schema.Attributes() {
		def := "-"
		if attr.HasDefault() {
			def = fmt.Sprint(attr.Default)
		}
		fmt.Fprintf(writer, "%s\t%s\t%t\t%s\t%s\n", attr.Name, attr.Descriptor, attr.Required, origin(attr.Name), def)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	if len(eff.Shadowed) > 0 {
		fmt.Fprintf(out, "\nOverridden native attributes: %s\n", strings.Join(eff.Shadowed, ", "))
	}
	return nil
}

type effectiveJSONPayload struct {
	Component  string          `json:"component"`
	Variant    string          `json:"variant"`
	Attributes []attributeJSON `json:"attributes"`
	Shadowed   []string        `json:"shadowed,omitempty"`
}

func renderEffectiveJSON(cmd *cobra.Command, name string, eff resolver.Effective) error {
	payload := effectiveJSONPayload{
		Component:  name,
		Variant:    string(eff.Variant),
		Attributes: attributesJSON(eff.Schema, originOf(eff)),
		Shadowed:   eff.Shadowed,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
