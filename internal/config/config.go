// Package config holds the configuration for the fivepoint CLI, loadable
// from configuration files, environment variables, and command-line flags.
package config

import (
	"fmt"
	"strings"
)

// Output format names accepted by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config represents the complete configuration for the fivepoint tool.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Solver settings
	Solver SolverConfig `mapstructure:"solver" yaml:"solver" json:"solver"`

	// Output settings
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Synthetic data generation settings (for the generate command)
	Generate GenerateConfig `mapstructure:"generate" yaml:"generate" json:"generate"`
}

// SolverConfig contains the numerical settings of the five-point solver.
type SolverConfig struct {
	// Tolerance bounds the imaginary-part filter on eigenvalues and the
	// near-zero divisor guards during candidate recovery.
	Tolerance float64 `mapstructure:"tolerance" yaml:"tolerance" json:"tolerance"`
}

// OutputConfig contains result formatting settings.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"`
	File   string `mapstructure:"file" yaml:"file" json:"file"`
}

// GenerateConfig contains settings for synthetic scene generation.
type GenerateConfig struct {
	Seed      int64 `mapstructure:"seed" yaml:"seed" json:"seed"`
	ShowTruth bool  `mapstructure:"show_truth" yaml:"show_truth" json:"show_truth"`
}

// DefaultConfig returns a configuration with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Solver:   SolverConfig{Tolerance: 1e-4},
		Output:   OutputConfig{Format: FormatText},
		Generate: GenerateConfig{Seed: 1},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	if c.Solver.Tolerance <= 0 {
		return fmt.Errorf("invalid solver tolerance: %g (must be positive)", c.Solver.Tolerance)
	}

	validFormats := []string{FormatText, FormatJSON, FormatYAML}
	valid := false
	for _, f := range validFormats {
		if c.Output.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid output format: %s (must be one of: %s)",
			c.Output.Format, strings.Join(validFormats, ", "))
	}

	return nil
}
