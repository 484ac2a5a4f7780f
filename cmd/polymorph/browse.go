package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/polymorph/internal/tui"
)

func newBrowseCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Explore components and their effective schemas interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, rootFlags)
		},
	}
}

func runBrowse(cmd *cobra.Command, rootFlags *rootFlags) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("browse", "starting the browser", fmt.Errorf("output is not a terminal"),
			"Run 'polymorph resolve <component>' for non-interactive output.")
	}

	lib, err := loadLibrary(cmd, rootFlags, nil)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(lib.Components()), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}
