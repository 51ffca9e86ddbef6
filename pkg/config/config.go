package config

import (
	"strings"

	"github.com/arthur-debert/pathological/pkg/errors"
	"github.com/arthur-debert/pathological/pkg/shell"
	"github.com/arthur-debert/pathological/pkg/ui/render"
)

// Config is the complete pathological configuration
type Config struct {
	Pathfile PathfileConfig `koanf:"pathfile"`
	Output   OutputConfig   `koanf:"output"`
	Logging  LoggingConfig  `koanf:"logging"`
	Shell    ShellConfig    `koanf:"shell"`
}

// PathfileConfig controls Pathfile discovery
type PathfileConfig struct {
	Name string `koanf:"name"`
}

// OutputConfig controls how resolved load paths are printed
type OutputConfig struct {
	Format string `koanf:"format"`
	Unique bool   `koanf:"unique"`
}

// LoggingConfig controls diagnostic logging
type LoggingConfig struct {
	Verbosity int  `koanf:"verbosity"`
	File      bool `koanf:"file"`
}

// ShellConfig controls the env command
type ShellConfig struct {
	// Variable receives the load path, RUBYLIB by default
	Variable string `koanf:"variable"`
}

// Validate checks values that cannot be expressed in the defaults
func (c *Config) Validate() error {
	name := c.Pathfile.Name
	if strings.TrimSpace(name) == "" {
		return errors.New(errors.ErrConfigValid, "pathfile.name must not be empty")
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return errors.Newf(errors.ErrConfigValid, "pathfile.name must be a plain file name, got %q", name).
			WithDetail("key", "pathfile.name")
	}

	if _, err := render.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "invalid output.format").
			WithDetail("key", "output.format")
	}

	if !shell.ValidVariable(c.Shell.Variable) {
		return errors.Newf(errors.ErrConfigValid, "shell.variable is not a valid variable name: %q", c.Shell.Variable).
			WithDetail("key", "shell.variable")
	}

	if c.Logging.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "logging.verbosity must not be negative, got %d", c.Logging.Verbosity).
			WithDetail("key", "logging.verbosity")
	}

	return nil
}
