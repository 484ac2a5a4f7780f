package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	polyerrors "github.com/alexisbeaulieu97/polymorph/pkg/errors"
)

const validDocument = `version: "1.0"
primitives:
  anchor:
    href: {type: string}
    target: {type: enum, values: [_self, _blank]}
    color: {type: number}
  heading1: {}
  span: {}
components:
  - name: text
    default: span
    options:
      color: {type: enum, values: [primary, danger], default: primary}
`

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, doc *Document, err error)
	}{
		{
			name:     "valid document is parsed",
			contents: validDocument,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.Len(t, doc.Primitives, 3)
				require.Len(t, doc.Components, 1)
				require.Equal(t, "span", doc.Components[0].Default)
				require.Equal(t, []string{"_self", "_blank"}, doc.Primitives["anchor"]["target"].Values)
			},
		},
		{
			name:     "malformed yaml reports line",
			contents: "version: \"1.0\"\nprimitives:\n  anchor: [\n",
			assert: func(t *testing.T, doc *Document, err error) {
				var parseErr *polyerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, "doc.yaml", parseErr.Path)
			},
		},
		{
			name:     "bad version",
			contents: "version: beta\nprimitives:\n  span: {}\n",
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *polyerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "version", validationErr.Field)
			},
		},
		{
			name:     "no primitives",
			contents: "version: \"1.0\"\n",
			assert: func(t *testing.T, doc *Document, err error) {
				require.ErrorContains(t, err, "at least one primitive")
			},
		},
		{
			name:     "unknown attribute type",
			contents: "version: \"1.0\"\nprimitives:\n  anchor:\n    href: {type: url}\n",
			assert: func(t *testing.T, doc *Document, err error) {
				require.ErrorContains(t, err, "value_kind")
			},
		},
		{
			name:     "enum without values",
			contents: "version: \"1.0\"\nprimitives:\n  anchor:\n    target: {type: enum}\n",
			assert: func(t *testing.T, doc *Document, err error) {
				require.ErrorContains(t, err, "required_if")
			},
		},
		{
			name:     "illegal primitive id",
			contents: "version: \"1.0\"\nprimitives:\n  Anchor: {}\n",
			assert: func(t *testing.T, doc *Document, err error) {
				require.ErrorContains(t, err, "primitive_id")
			},
		},
		{
			name: "component default must exist",
			contents: `version: "1.0"
primitives:
  span: {}
components:
  - name: text
    default: marquee
`,
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *polyerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "components[0].default", validationErr.Field)
				require.ErrorIs(t, err, polyerrors.ErrUnknownPrimitive)
			},
		},
		{
			name: "duplicate component names",
			contents: `version: "1.0"
primitives:
  span: {}
components:
  - name: text
    default: span
  - name: text
    default: span
`,
			assert: func(t *testing.T, doc *Document, err error) {
				require.ErrorContains(t, err, "duplicate component name")
			},
		},
		{
			name: "required option with default",
			contents: `version: "1.0"
primitives:
  span: {}
components:
  - name: text
    default: span
    options:
      color: {type: string, required: true, default: red}
`,
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *polyerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "components[0].options", validationErr.Field)
			},
		},
		{
			name: "builtin primitives satisfy defaults",
			contents: `version: "1.0"
include_builtin: true
components:
  - name: link
    default: anchor
`,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.True(t, doc.IncludeBuiltin)
			},
		},
		{
			name: "declared primitive may not shadow a builtin",
			contents: `version: "1.0"
include_builtin: true
primitives:
  anchor:
    href: {type: number}
`,
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *polyerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "primitives.anchor", validationErr.Field)
				require.ErrorContains(t, err, "shadows a builtin")
			},
		},
		{
			name: "nested component becomes available to later components",
			contents: `version: "1.0"
primitives:
  span: {}
components:
  - name: text
    default: span
    nested: true
  - name: card
    default: text
`,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "nested component may not collide with a primitive",
			contents: `version: "1.0"
primitives:
  span: {}
components:
  - name: span
    default: span
    nested: true
`,
			assert: func(t *testing.T, doc *Document, err error) {
				require.ErrorContains(t, err, "collides")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc, err := Parse("doc.yaml", []byte(tc.contents))
			tc.assert(t, doc, err)
		})
	}
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "polymorph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validDocument), 0o644))

	doc, err := ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, "1.0", doc.Version)

	_, err = ParseFile(filepath.Join(dir, "missing.yaml"))
	var parseErr *polyerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 0, extractLine(os.ErrInvalid))
	require.Equal(t, 7, extractLine(fmt.Errorf("yaml: line 7: did not find expected key")))
}
