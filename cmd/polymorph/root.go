package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/polymorph/internal/config"
	"github.com/alexisbeaulieu97/polymorph/internal/logger"
	"github.com/alexisbeaulieu97/polymorph/internal/render"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "polymorph",
		Short:         "Polymorph resolves and validates variant-driven component schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a catalog document (defaults to the builtin catalog)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newCatalogCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadLibrary builds the library selected by the root flags. Log output goes
// to the command's error stream.
func loadLibrary(cmd *cobra.Command, flags *rootFlags, renderer render.Renderer) (*config.Library, error) {
	level := "warn"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, newCommandError("load catalog", "creating logger", err, "Check the log level and try again.")
	}

	opts := config.BuildOptions{Renderer: renderer, Logger: log}
	if flags.configPath == "" {
		lib, err := config.Default(opts)
		if err != nil {
			return nil, newCommandError("load catalog", "building the builtin library", err, "This is a bug; please report it.")
		}
		return lib, nil
	}

	if err := validateConfigPath(flags.configPath); err != nil {
		return nil, newCommandError("load catalog", "checking config path", err, "Pass an existing YAML document with --config.")
	}

	lib, err := config.Load(flags.configPath, opts)
	if err != nil {
		return nil, newCommandError("load catalog", flags.configPath, err, "Fix the reported field and try again.")
	}
	log.WithFields(map[string]any{"path": flags.configPath, "primitives": lib.Catalog().Len()}).Debug("catalog loaded")
	return lib, nil
}
