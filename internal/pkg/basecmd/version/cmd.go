// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License 2.0;
// you may not use this file except in compliance with the Elastic License 2.0.

package version

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/elastic/elastic-factorial/internal/pkg/cli"
	"github.com/elastic/elastic-factorial/internal/pkg/release"
)

// Output is the output of the version command when --yaml is used.
type Output struct {
	Binary *release.VersionInfo `yaml:"binary"`
}

// NewCommandWithArgs returns a new version command.
func NewCommandWithArgs(streams *cli.IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display the version of the factorial binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputYaml, _ := cmd.Flags().GetBool("yaml")
			info := release.Info()

			if outputYaml {
				out, err := yaml.Marshal(Output{Binary: &info})
				if err != nil {
					return fmt.Errorf("failed to marshal version output: %w", err)
				}
				_, err = streams.Out.Write(out)
				return err
			}

			_, err := fmt.Fprintf(streams.Out, "Binary: %s\n", info)
			return err
		},
	}

	cmd.Flags().Bool("yaml", false, "Output information in YAML format")

	return cmd
}
