// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License 2.0;
// you may not use this file except in compliance with the Elastic License 2.0.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elastic/elastic-factorial/internal/pkg/cli"
	"github.com/elastic/elastic-factorial/internal/pkg/config"
	"github.com/elastic/elastic-factorial/internal/pkg/sequence"
	"github.com/elastic/elastic-factorial/pkg/core/logger"
)

func newRunCommandWithArgs(_ []string, streams *cli.IOStreams) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Print the factorial of every configured input",
		Long:  "This command prints the factorial of every configured input, 5 and 0 unless a configuration file says otherwise.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			levelOverride, _ := cmd.Flags().GetString("log-level")
			return run(streams, cfgPath, levelOverride)
		},
	}
}

func run(streams *cli.IOStreams, cfgPath, levelOverride string) error {
	settings, err := config.LoadSettings(cfgPath)
	if err != nil {
		return err
	}

	levelName := settings.Logging.Level
	if levelOverride != "" {
		levelName = levelOverride
	}
	lvl, err := logger.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	log := logger.New("factorial", lvl, streams.Err)
	log.Debugw("starting entry sequence", "inputs", settings.Inputs, "config", cfgPath)

	if err := sequence.Run(log, streams.Out, settings.Inputs); err != nil {
		log.Errorw("entry sequence failed", "error", err)
		return err
	}
	return nil
}
