// Package config loads runtime configuration for the graha CLI. Values come
// from .graha.yaml, GRAHA_* environment variables, and command flags, in
// ascending precedence. The engine itself never reads this package: the CLI
// translates a Config into an explicit engine.Config per computation.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a graha invocation.
type Config struct {
	Ayanamsa     string `mapstructure:"ayanamsa"`
	HouseSystem  string `mapstructure:"house_system"`
	IncludeNodes bool   `mapstructure:"include_nodes"`

	// EphemerisTable is the path to a TOML ephemeris table. It is the one
	// setting with no default: positions must come from real data.
	EphemerisTable string `mapstructure:"ephemeris_table"`

	// AspectTable and YogaCatalog optionally override the built-in versioned
	// tables with TOML files.
	AspectTable string `mapstructure:"aspect_table"`
	YogaCatalog string `mapstructure:"yoga_catalog"`

	Divisions []int `mapstructure:"divisions"`
	WithDasha bool  `mapstructure:"with_dasha"`

	Verbose bool `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying defaults for anything not
// set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("ayanamsa", "lahiri")
	viper.SetDefault("house_system", "whole_sign")
	viper.SetDefault("include_nodes", true)
	viper.SetDefault("ephemeris_table", "")
	viper.SetDefault("aspect_table", "")
	viper.SetDefault("yoga_catalog", "")
	viper.SetDefault("divisions", []int{9})
	viper.SetDefault("with_dasha", true)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
