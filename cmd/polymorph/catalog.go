package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/polymorph/internal/catalog"
	"github.com/alexisbeaulieu97/polymorph/internal/schema"
)

type catalogOptions struct {
	jsonOutput bool
}

func newCatalogCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the primitives of the catalog and their native attributes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runCatalog(cmd *cobra.Command, rootFlags *rootFlags, opts *catalogOptions) error {
	lib, err := loadLibrary(cmd, rootFlags, nil)
	if err != nil {
		return err
	}

	cat := lib.Catalog()
	if opts.jsonOutput {
		return renderCatalogJSON(cmd, cat)
	}
	return renderCatalogTable(cmd, cat)
}

func renderCatalogTable(cmd *cobra.Command, cat *catalog.Catalog) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "PRIMITIVE\tATTRIBUTES")

	marker := requiredMarker(cmd.OutOrStdout())
	for _, id := range cat.IDs() {
		native, err := cat.Lookup(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(writer, "%s\t%s\n", id, summarizeAttributes(native, marker))
	}

	return writer.Flush()
}

func summarizeAttributes(s schema.Schema, marker string) string {
	if s.Len() == 0 {
		return "(none)"
	}
	parts := make([]string, 0, s.Len())
	for _, attr := range s.Attributes() {
		name := attr.Name
		if attr.Required {
			name += marker
		}
		parts = append(parts, fmt.Sprintf("%s:%s", name, attr.Descriptor))
	}
	return strings.Join(parts, " ")
}

// requiredMarker returns the suffix flagging required attributes, falling
// back to ASCII when the writer is not a terminal.
func requiredMarker(writer any) string {
	if isTerminal(writer) {
		return "●"
	}
	return "*"
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

type attributeJSON struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Values   []string `json:"values,omitempty"`
	Required bool     `json:"required"`
	Default  any      `json:"default,omitempty"`
	Origin   string   `json:"origin,omitempty"`
}

type primitiveJSON struct {
	ID         string          `json:"id"`
	Attributes []attributeJSON `json:"attributes"`
}

type catalogJSONPayload struct {
	Count      int             `json:"count"`
	Primitives []primitiveJSON `json:"primitives"`
}

func attributesJSON(s schema.Schema, origin func(string) string) []attributeJSON {
	out := make([]attributeJSON, 0, s.Len())
	for _, attr := range s.Attributes() {
		entry := attributeJSON{
			Name:     attr.Name,
			Type:     attr.Descriptor.Kind.String(),
			Values:   attr.Descriptor.Values,
			Required: attr.Required,
			Default:  attr.Default,
		}
		if origin != nil {
			entry.Origin = origin(attr.Name)
		}
		out = append(out, entry)
	}
	return out
}

func renderCatalogJSON(cmd *cobra.Command, cat *catalog.Catalog) error {
	payload := catalogJSONPayload{
		Count:      cat.Len(),
		Primitives: make([]primitiveJSON, 0, cat.Len()),
	}

	for _, id := range cat.IDs() {
		native, err := cat.Lookup(id)
		if err != nil {
			return err
		}
		payload.Primitives = append(payload.Primitives, primitiveJSON{
			ID:         string(id),
			Attributes: attributesJSON(native, nil),
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
