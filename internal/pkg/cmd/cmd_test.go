// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License 2.0;
// you may not use this file except in compliance with the Elastic License 2.0.

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elastic/elastic-factorial/internal/pkg/cli"
	"github.com/elastic/elastic-factorial/pkg/core/logger"
)

const defaultOutput = "Input: 5 -> Output: Factorial = 120\n" +
	"Input: 0 -> Output: Factorial = 1\n"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { logger.SetLevel(logger.DefaultLogLevel) })

	streams, _, out, errOut := cli.NewTestingIOStreams()
	cmd := NewCommandWithArgs(args, streams)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "factorial.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefaultRun(t *testing.T) {
	out, errOut, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, defaultOutput, out)
	assert.Empty(t, errOut)
}

func TestRunSubcommand(t *testing.T) {
	out, _, err := execute(t, "run")
	require.NoError(t, err)
	assert.Equal(t, defaultOutput, out)
}

func TestRunDebugLogsGoToStderr(t *testing.T) {
	out, errOut, err := execute(t, "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, defaultOutput, out)
	assert.Contains(t, errOut, "computed factorial")
	assert.Contains(t, errOut, "starting entry sequence")
}

func TestRunWithConfig(t *testing.T) {
	path := writeConfig(t, "inputs: [3, 1, 6]\n")

	out, _, err := execute(t, "-c", path)
	require.NoError(t, err)
	assert.Equal(t,
		"Input: 3 -> Output: Factorial = 6\n"+
			"Input: 1 -> Output: Factorial = 1\n"+
			"Input: 6 -> Output: Factorial = 720\n",
		out)
}

func TestRunConfigLogLevel(t *testing.T) {
	path := writeConfig(t, "logging.level: debug\n")

	out, errOut, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, defaultOutput, out)
	assert.Contains(t, errOut, "computed factorial")
}

func TestRunErrors(t *testing.T) {
	cases := map[string]struct {
		args []string
		err  string
	}{
		"missing config file": {
			args: []string{"-c", filepath.Join(t.TempDir(), "missing.yml")},
			err:  "could not read configuration file",
		},
		"negative input": {
			args: []string{"-c", writeConfig(t, "inputs: [-1]\n")},
			err:  "factorial is not defined for negative number -1",
		},
		"bad log level": {
			args: []string{"--log-level", "loud"},
			err:  "invalid --log-level",
		},
		"unexpected argument": {
			args: []string{"7"},
			err:  "unknown command",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			out, _, err := execute(t, tc.args...)
			require.ErrorContains(t, err, tc.err)
			assert.Empty(t, out)
		})
	}
}

func TestVersionSubcommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Binary: ")
}
