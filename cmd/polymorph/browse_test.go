package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBrowseCommand_RequiresTerminal(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand("browse")
	require.ErrorContains(t, err, "output is not a terminal")
}
