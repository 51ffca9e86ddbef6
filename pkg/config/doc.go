// Package config handles configuration management for pathological.
// It loads configuration from the embedded defaults, an optional user
// config file (TOML or YAML), environment variables and command-line
// overrides, in that order of increasing precedence.
package config
