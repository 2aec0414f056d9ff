// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License 2.0;
// you may not use this file except in compliance with the Elastic License 2.0.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestNewConfigFrom(t *testing.T) {
	type inner struct {
		Level string `config:"level"`
	}
	type outer struct {
		Logging inner `config:"logging"`
	}

	sources := map[string]interface{}{
		"string": "logging:\n  level: debug\n",
		"bytes":  []byte("logging:\n  level: debug\n"),
		"reader": strings.NewReader("logging:\n  level: debug\n"),
		"dotted": "logging.level: debug\n",
		"map": map[string]interface{}{
			"logging": map[string]interface{}{"level": "debug"},
		},
	}

	for name, from := range sources {
		t.Run(name, func(t *testing.T) {
			cfg, err := NewConfigFrom(from)
			require.NoError(t, err)

			var out outer
			require.NoError(t, cfg.UnpackTo(&out))
			assert.Equal(t, "debug", out.Logging.Level)
		})
	}
}

func TestNewConfigFromEmpty(t *testing.T) {
	cfg, err := NewConfigFrom("")
	require.NoError(t, err)
	assert.False(t, cfg.HasField("inputs"))
}

func TestNewConfigFromInvalidYAML(t *testing.T) {
	_, err := NewConfigFrom("inputs: [5, 0")
	require.Error(t, err)
}

func TestNewConfigFromResolvesEnv(t *testing.T) {
	t.Setenv("FACTORIAL_TEST_LEVEL", "warn")

	cfg, err := NewConfigFrom("logging.level: ${FACTORIAL_TEST_LEVEL}")
	require.NoError(t, err)

	var out struct {
		Logging struct {
			Level string `config:"level"`
		} `config:"logging"`
	}
	require.NoError(t, cfg.UnpackTo(&out))
	assert.Equal(t, "warn", out.Logging.Level)
}

func TestMerge(t *testing.T) {
	cfg := MustNewConfigFrom("inputs: [1, 2]")
	require.NoError(t, cfg.Merge(MustNewConfigFrom("logging.level: error")))

	assert.True(t, cfg.HasField("inputs"))
	assert.True(t, cfg.HasField("logging"))
}

func TestLoadFile(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "factorial.yml")
	dumpToYAML(t, cfgPath, map[string]interface{}{
		"inputs": []int{3, 4},
	})

	cfg, err := LoadFile(cfgPath)
	require.NoError(t, err)

	var out struct {
		Inputs []int `config:"inputs"`
	}
	require.NoError(t, cfg.UnpackTo(&out))
	assert.Equal(t, []int{3, 4}, out.Inputs)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func dumpToYAML(t *testing.T, out string, in interface{}) {
	t.Helper()

	b, err := yaml.Marshal(in)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(out, b, 0600))
}
