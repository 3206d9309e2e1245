// File: config.go
// Title: CLI Configuration Implementation
// Description: Implements loading and validation of slyce CLI defaults from
//              TOML and YAML files with format auto-detection by file
//              extension.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-14 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto auto-detects the format from the file extension (default)
	FormatAuto Format = iota

	// FormatTOML forces TOML format
	FormatTOML

	// FormatYAML forces YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds the CLI defaults. Flags given on the command line override
// any value loaded from a file.
type Config struct {
	// Input is the default array document format: "json" or "yaml"
	Input string `toml:"input" yaml:"input"`

	// Color enables styled output in highlight mode
	Color bool `toml:"color" yaml:"color"`

	// Indices prints positions instead of elements by default
	Indices bool `toml:"indices" yaml:"indices"`

	// Highlight renders the whole array with the selection marked
	Highlight bool `toml:"highlight" yaml:"highlight"`
}

// Default returns the built-in defaults used when no file is given.
func Default() *Config {
	return &Config{
		Input: "json",
		Color: true,
	}
}

// Load reads CLI defaults from the given file, auto-detecting the format
// from the extension (.toml, .yaml, .yml). Missing files are an error; the
// caller decides whether a config file is optional.
func Load(path string) (*Config, error) {
	return LoadWithFormat(path, FormatAuto)
}

// LoadWithFormat reads CLI defaults from the given file in an explicit
// format, bypassing extension detection.
func LoadWithFormat(path string, format Format) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if format == FormatAuto {
		format, err = detectFormat(path)
		if err != nil {
			return nil, err
		}
	}

	cfg := Default()
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse TOML config %s: %w", path, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse YAML config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %s", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the loaded values for consistency.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Input) {
	case "json", "yaml":
		return nil
	default:
		return fmt.Errorf("invalid input format %q (want json or yaml)", c.Input)
	}
}

// detectFormat maps a file extension onto a configuration format
func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("cannot detect config format of %s", path)
	}
}
