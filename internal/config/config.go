// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the settings of the distfit command from
// defaults, an optional config file, DISTFIT_ environment variables
// and command-line flags, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-distfit/distfit/fit"
	"github.com/go-distfit/distfit/internal/logger"
	"github.com/go-distfit/distfit/report"
)

// EnvPrefix prefixes the environment variables that override config
// keys. OUTPUT_FORMAT overrides output.format, for example.
const EnvPrefix = "DISTFIT"

// MinIterations is the smallest accepted fit.max_iterations.
const MinIterations = 600

// Config is the complete command configuration.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Plot    PlotConfig    `mapstructure:"plot"`
	Fit     FitConfig     `mapstructure:"fit"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OutputConfig controls the printed report.
type OutputConfig struct {
	Print     bool   `mapstructure:"print"`
	Format    string `mapstructure:"format"`
	Precision int    `mapstructure:"precision"`
	XLSX      string `mapstructure:"xlsx"`
}

// PlotConfig controls the chart.
type PlotConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	File    string `mapstructure:"file"`
}

// FitConfig controls the optimizer.
type FitConfig struct {
	MaxIterations int    `mapstructure:"max_iterations"`
	Method        string `mapstructure:"method"`
}

// LoggingConfig controls the logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps flag names to the config keys they set.
var flagKeys = map[string]string{
	"print":          "output.print",
	"format":         "output.format",
	"precision":      "output.precision",
	"xlsx":           "output.xlsx",
	"plot":           "plot.enabled",
	"plot-file":      "plot.file",
	"max-iterations": "fit.max_iterations",
	"method":         "fit.method",
	"log-level":      "logging.level",
}

// RegisterFlags defines the command-line flags that override config
// keys, plus --config.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "read settings from `file` (YAML, TOML or JSON)")
	fs.Bool("print", true, "print the report to standard output")
	fs.String("format", "table", "report format: table, array, markdown or html")
	fs.Int("precision", 3, "digits printed after the decimal point")
	fs.String("xlsx", "", "also write the report tables to the XLSX `file`")
	fs.Bool("plot", false, "draw the observed and fitted distributions")
	fs.String("plot-file", "distfit.png", "chart `file`; png, svg or pdf by extension")
	fs.Int("max-iterations", fit.DefaultMaxIterations, "optimizer iteration cap")
	fs.String("method", fit.NelderMead.String(), "optimizer: nelder-mead or lbfgs")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
}

// Load reads the configuration. path names an optional config file;
// if empty, only defaults, environment and flags apply. Only flags
// that were set on the command line override other sources.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Enable environment variable override
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// setDefaults configures default values for all configuration options.
func setDefaults(v *viper.Viper) {
	// Output defaults
	v.SetDefault("output.print", true)
	v.SetDefault("output.format", report.Table.String())
	v.SetDefault("output.precision", 3)
	v.SetDefault("output.xlsx", "")

	// Plot defaults
	v.SetDefault("plot.enabled", false)
	v.SetDefault("plot.file", "distfit.png")

	// Fit defaults
	v.SetDefault("fit.max_iterations", fit.DefaultMaxIterations)
	v.SetDefault("fit.method", fit.NelderMead.String())

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "plain")
}

// Validate checks that all configuration values are valid.
func (c *Config) Validate() error {
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if c.Output.Precision < 0 || c.Output.Precision > 17 {
		return fmt.Errorf("output.precision must be between 0 and 17")
	}
	if c.Plot.Enabled && c.Plot.File == "" {
		return fmt.Errorf("plot.file is required when plot.enabled is set")
	}
	if c.Fit.MaxIterations < MinIterations {
		return fmt.Errorf("fit.max_iterations must be at least %d", MinIterations)
	}
	if _, err := fit.ParseMethod(c.Fit.Method); err != nil {
		return fmt.Errorf("fit.method: %w", err)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// Fitter returns the optimizer settings. c must be valid.
func (c *Config) Fitter() fit.Fitter {
	m, _ := fit.ParseMethod(c.Fit.Method)
	return fit.Fitter{MaxIterations: c.Fit.MaxIterations, Method: m}
}

// Format returns the report format. c must be valid.
func (c *Config) Format() report.Format {
	f, _ := report.ParseFormat(c.Output.Format)
	return f
}
