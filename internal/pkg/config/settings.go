// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License 2.0;
// you may not use this file except in compliance with the Elastic License 2.0.

package config

import (
	"errors"
	"fmt"

	"github.com/elastic/elastic-factorial/pkg/core/logger"
)

// DefaultInputs are computed when no inputs are configured.
var DefaultInputs = []int{5, 0}

// Settings is the typed program configuration.
type Settings struct {
	Inputs  []int           `config:"inputs" yaml:"inputs"`
	Logging LoggingSettings `config:"logging" yaml:"logging"`
}

// LoggingSettings configures the logger.
type LoggingSettings struct {
	Level string `config:"level" yaml:"level"`
}

// DefaultSettings returns the settings used when no configuration file is given.
func DefaultSettings() *Settings {
	inputs := make([]int, len(DefaultInputs))
	copy(inputs, DefaultInputs)
	return &Settings{
		Inputs: inputs,
		Logging: LoggingSettings{
			Level: logger.DefaultLogLevel.String(),
		},
	}
}

// NewSettingsFrom unpacks settings from a raw configuration, filling the defaults.
func NewSettingsFrom(cfg *Config) (*Settings, error) {
	settings := DefaultSettings()
	if cfg == nil {
		return settings, nil
	}

	settings.Inputs = nil
	if err := cfg.UnpackTo(settings); err != nil {
		return nil, err
	}
	if !cfg.HasField("inputs") {
		settings.Inputs = DefaultSettings().Inputs
	}
	if err := settings.validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// LoadSettings reads the settings from path. An empty path returns the defaults.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		return DefaultSettings(), nil
	}

	cfg, err := LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read configuration file %s: %w", path, err)
	}
	settings, err := NewSettingsFrom(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not parse configuration file %s: %w", path, err)
	}
	return settings, nil
}

// validate checks the unpacked settings.
func (s *Settings) validate() error {
	if len(s.Inputs) == 0 {
		return errors.New("inputs must not be empty")
	}
	for i, n := range s.Inputs {
		if n < 0 {
			return fmt.Errorf("inputs[%d]: factorial is not defined for negative number %d", i, n)
		}
	}
	if _, err := logger.ParseLevel(s.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}
