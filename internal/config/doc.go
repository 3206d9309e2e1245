// Package config implements configuration file loading for the slyce CLI.
//
// Package: config
// Title: CLI Configuration Loading
// Description: This package loads optional CLI defaults from TOML or YAML
//              files. The format is auto-detected from the file extension
//              and can be forced explicitly. Only a flat defaults structure
//              is supported; there is no environment layer and no change
//              watching, as the CLI is a one-shot process.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-14 v0.1.0: Initial implementation with TOML/YAML support
package config
