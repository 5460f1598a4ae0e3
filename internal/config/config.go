// SPDX-License-Identifier: MIT

// Package config loads footballteam settings through viper.
//
// Precedence, lowest first: built-in defaults, an optional YAML file given
// with --config, FOOTBALLTEAM_* environment variables, command-line flags.
// None of the settings change the result printed on stdout; they only steer
// diagnostics and the generate command.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// FOOTBALLTEAM_LOG_LEVEL for log.level.
const EnvPrefix = "FOOTBALLTEAM"

// Config represents the complete footballteam configuration.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Report   ReportConfig   `mapstructure:"report"`
	Generate GenerateConfig `mapstructure:"generate"`
}

// LogConfig controls diagnostics written to stderr.
type LogConfig struct {
	// Level is one of "trace", "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is "text" or "json".
	Format string `mapstructure:"format"`
}

// ReportConfig controls extra reporting around a selection.
type ReportConfig struct {
	// Stats logs the selected team's summary statistics.
	Stats bool `mapstructure:"stats"`
}

// GenerateConfig holds defaults for the generate command.
type GenerateConfig struct {
	Count int   `mapstructure:"count"`
	Seed  int64 `mapstructure:"seed"`
	Min   int64 `mapstructure:"min"`
	Max   int64 `mapstructure:"max"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Report: ReportConfig{
			Stats: false,
		},
		Generate: GenerateConfig{
			Count: 10,
			Seed:  1,
			Min:   1,
			Max:   1_000_000_000,
		},
	}
}

// SetDefaults registers Default() values on v so that environment variables
// and Unmarshal see every key.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	v.SetDefault("report.stats", defaults.Report.Stats)

	v.SetDefault("generate.count", defaults.Generate.Count)
	v.SetDefault("generate.seed", defaults.Generate.Seed)
	v.SetDefault("generate.min", defaults.Generate.Min)
	v.SetDefault("generate.max", defaults.Generate.Max)
}

// New returns a viper instance with defaults and environment lookup wired.
// If file is non-empty it is read as the config file.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	// log.level -> FOOTBALLTEAM_LOG_LEVEL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Load reads the configuration from v into a Config struct and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}
