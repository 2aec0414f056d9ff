// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License 2.0;
// you may not use this file except in compliance with the Elastic License 2.0.

package config

import (
	"fmt"
	"io"
	"maps"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/elastic/go-ucfg"
)

// DefaultOptions defaults options used to read the configuration
var DefaultOptions = []ucfg.Option{
	ucfg.PathSep("."),
	ucfg.ResolveEnv,
	ucfg.VarExp,
}

// Config wraps the raw, not yet typed, configuration tree.
type Config struct {
	raw *ucfg.Config
}

// New creates a new empty config.
func New() *Config {
	return &Config{raw: ucfg.New()}
}

// NewConfigFrom takes a interface and read the configuration like it was YAML.
func NewConfigFrom(from interface{}, opts ...ucfg.Option) (*Config, error) {
	if len(opts) == 0 {
		opts = DefaultOptions
	}

	var data map[string]interface{}
	switch in := from.(type) {
	case []byte:
		if err := yaml.Unmarshal(in, &data); err != nil {
			return nil, err
		}
	case string:
		if err := yaml.Unmarshal([]byte(in), &data); err != nil {
			return nil, err
		}
	case io.Reader:
		if closer, ok := in.(io.Closer); ok {
			defer closer.Close()
		}
		content, err := io.ReadAll(in)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	case map[string]interface{}:
		// don't modify the incoming contents
		data = maps.Clone(in)
	default:
		c, err := ucfg.NewFrom(from, opts...)
		if err != nil {
			return nil, err
		}
		return &Config{raw: c}, nil
	}

	if data == nil {
		// empty document
		return New(), nil
	}

	c, err := ucfg.NewFrom(data, opts...)
	if err != nil {
		return nil, err
	}
	return &Config{raw: c}, nil
}

// LoadFile take a path and load the file and return a new configuration.
func LoadFile(path string) (*Config, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	return NewConfigFrom(fp)
}

// HasField returns true if the top-level key is present.
func (c *Config) HasField(name string) bool {
	return c.raw.HasField(name)
}

// UnpackTo unpacks this config into to with the given options.
func (c *Config) UnpackTo(to interface{}, opts ...ucfg.Option) error {
	if len(opts) == 0 {
		opts = DefaultOptions
	}
	return c.raw.Unpack(to, opts...)
}

// Merge merges from into the configuration.
func (c *Config) Merge(from interface{}, opts ...ucfg.Option) error {
	if len(opts) == 0 {
		opts = DefaultOptions
	}
	if other, ok := from.(*Config); ok {
		return c.raw.Merge(other.raw, opts...)
	}
	return c.raw.Merge(from, opts...)
}

// MustNewConfigFrom try to create a configuration based on the type passed as arguments and panic
// on failures.
func MustNewConfigFrom(from interface{}) *Config {
	c, err := NewConfigFrom(from)
	if err != nil {
		panic(fmt.Sprintf("could not read configuration %+v", err))
	}
	return c
}
