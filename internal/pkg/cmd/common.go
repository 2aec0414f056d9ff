// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License 2.0;
// you may not use this file except in compliance with the Elastic License 2.0.

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/elastic/elastic-factorial/internal/pkg/basecmd"
	"github.com/elastic/elastic-factorial/internal/pkg/cli"
)

// NewCommand returns the default command for the program.
func NewCommand() *cobra.Command {
	return NewCommandWithArgs(os.Args, cli.NewIOStreams())
}

// NewCommandWithArgs returns a new root command with the flags and the subcommands.
// Running it without a subcommand behaves like `run`.
func NewCommandWithArgs(args []string, streams *cli.IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "factorial [subcommand]",
		Short:         "Compute and print example factorials",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)

	cmd.PersistentFlags().StringP("config", "c", "", "Configuration file, defaults are used when empty")
	cmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error), overrides logging.level")

	// sub-commands
	run := newRunCommandWithArgs(args, streams)
	cmd.AddCommand(basecmd.NewDefaultCommandsWithArgs(args, streams)...)
	cmd.AddCommand(run)

	cmd.Args = cobra.NoArgs
	cmd.RunE = run.RunE

	return cmd
}
