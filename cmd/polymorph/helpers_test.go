package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testDocument = `version: "1.0"
primitives:
  anchor:
    href: {type: string, required: true}
    color: {type: number}
  span: {}
components:
  - name: link
    default: anchor
    options:
      color: {type: enum, values: [primary, danger], default: primary}
`

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeDocument(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "polymorph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}
