package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Ayanamsa", cfg.Ayanamsa, "lahiri"},
		{"HouseSystem", cfg.HouseSystem, "whole_sign"},
		{"IncludeNodes", cfg.IncludeNodes, true},
		{"EphemerisTable", cfg.EphemerisTable, ""},
		{"AspectTable", cfg.AspectTable, ""},
		{"YogaCatalog", cfg.YogaCatalog, ""},
		{"WithDasha", cfg.WithDasha, true},
		{"Verbose", cfg.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}

	if len(cfg.Divisions) != 1 || cfg.Divisions[0] != 9 {
		t.Errorf("Divisions = %v, want [9]", cfg.Divisions)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetViper()

	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "ayanamsa",
			envKey: "GRAHA_AYANAMSA",
			envVal: "raman",
			field:  func(c Config) any { return c.Ayanamsa },
			want:   "raman",
		},
		{
			name:   "house_system",
			envKey: "GRAHA_HOUSE_SYSTEM",
			envVal: "equal",
			field:  func(c Config) any { return c.HouseSystem },
			want:   "equal",
		},
		{
			name:   "ephemeris_table",
			envKey: "GRAHA_EPHEMERIS_TABLE",
			envVal: "/data/ephem.toml",
			field:  func(c Config) any { return c.EphemerisTable },
			want:   "/data/ephem.toml",
		},
		{
			name:   "yoga_catalog",
			envKey: "GRAHA_YOGA_CATALOG",
			envVal: "/data/yogas.toml",
			field:  func(c Config) any { return c.YogaCatalog },
			want:   "/data/yogas.toml",
		},
		{
			name:   "verbose",
			envKey: "GRAHA_VERBOSE",
			envVal: "true",
			field:  func(c Config) any { return c.Verbose },
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			// Set env prefix so GRAHA_* env vars map to config keys.
			viper.SetEnvPrefix("GRAHA")
			viper.AutomaticEnv()

			os.Setenv(tt.envKey, tt.envVal)
			defer os.Unsetenv(tt.envKey)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}
