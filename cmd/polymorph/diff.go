package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/polymorph/internal/catalog"
	"github.com/alexisbeaulieu97/polymorph/pkg/diff"
)

func newDiffCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <component> <variant> <variant>",
		Short: "Compare the effective schemas of a component for two variants",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, rootFlags, args[0], catalog.PrimitiveID(args[1]), catalog.PrimitiveID(args[2]))
		},
	}
}

func runDiff(cmd *cobra.Command, rootFlags *rootFlags, name string, before, after catalog.PrimitiveID) error {
	lib, err := loadLibrary(cmd, rootFlags, nil)
	if err != nil {
		return err
	}

	shell, err := lib.Component(name)
	if err != nil {
		return newCommandError("diff", name, err, "Run 'polymorph catalog' and check the component name.")
	}

	left, err := shell.Resolve(before)
	if err != nil {
		return newCommandError("diff", name, err, "Run 'polymorph catalog' to list the available primitives.")
	}
	right, err := shell.Resolve(after)
	if err != nil {
		return newCommandError("diff", name, err, "Run 'polymorph catalog' to list the available primitives.")
	}

	out := diff.Unified(left.Describe(), right.Describe(),
		fmt.Sprintf("%s as %s", name, before), fmt.Sprintf("%s as %s", name, after))
	if out == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s accepts the same attributes as %s and %s\n", name, before, after)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
