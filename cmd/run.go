package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgopan/graha/internal/aspects"
	"github.com/rgopan/graha/internal/astrotime"
	"github.com/rgopan/graha/internal/ayanamsa"
	"github.com/rgopan/graha/internal/config"
	"github.com/rgopan/graha/internal/engine"
	"github.com/rgopan/graha/internal/ephem"
	"github.com/rgopan/graha/internal/houses"
	"github.com/rgopan/graha/internal/yoga"
)

// addMomentFlags registers the birth-moment flags shared by every command
// that computes a chart.
func addMomentFlags(cmd *cobra.Command) {
	cmd.Flags().String("date", "", "birth date, YYYY-MM-DD (required)")
	cmd.Flags().String("time", "00:00:00", "birth time, HH:MM[:SS]")
	cmd.Flags().Float64("offset", 0, "UTC offset of the local clock, hours")
	cmd.Flags().Float64("lat", 0, "geographic latitude, degrees north")
	cmd.Flags().Float64("lon", 0, "geographic longitude, degrees east")
	cmd.Flags().Float64("alt", 0, "altitude, meters")
	_ = cmd.MarkFlagRequired("date")
}

// momentFromFlags assembles an unvalidated Moment; engine.Compute performs
// the range validation.
func momentFromFlags(cmd *cobra.Command) (astrotime.Moment, error) {
	dateStr, _ := cmd.Flags().GetString("date")
	timeStr, _ := cmd.Flags().GetString("time")

	var m astrotime.Moment
	dp := strings.Split(dateStr, "-")
	if len(dp) != 3 {
		return m, fmt.Errorf("date %q: want YYYY-MM-DD", dateStr)
	}
	tp := strings.Split(timeStr, ":")
	if len(tp) != 2 && len(tp) != 3 {
		return m, fmt.Errorf("time %q: want HH:MM[:SS]", timeStr)
	}

	var err error
	if m.Year, err = strconv.Atoi(dp[0]); err == nil {
		if m.Month, err = strconv.Atoi(dp[1]); err == nil {
			m.Day, err = strconv.Atoi(dp[2])
		}
	}
	if err != nil {
		return m, fmt.Errorf("date %q: %w", dateStr, err)
	}
	if m.Hour, err = strconv.Atoi(tp[0]); err == nil {
		m.Minute, err = strconv.Atoi(tp[1])
	}
	if err == nil && len(tp) == 3 {
		m.Second, err = strconv.ParseFloat(tp[2], 64)
	}
	if err != nil {
		return m, fmt.Errorf("time %q: %w", timeStr, err)
	}

	m.OffsetHours, _ = cmd.Flags().GetFloat64("offset")
	m.Latitude, _ = cmd.Flags().GetFloat64("lat")
	m.Longitude, _ = cmd.Flags().GetFloat64("lon")
	m.Altitude, _ = cmd.Flags().GetFloat64("alt")
	return m, nil
}

// engineConfig translates the CLI configuration into an explicit engine
// configuration, loading any TOML overrides for the versioned tables.
func engineConfig(cfg config.Config) (engine.Config, error) {
	out := engine.DefaultConfig()

	model, err := ayanamsa.Parse(cfg.Ayanamsa)
	if err != nil {
		return out, err
	}
	out.Ayanamsa = model

	system, err := houses.ParseSystem(cfg.HouseSystem)
	if err != nil {
		return out, err
	}
	out.HouseSystem = system
	out.IncludeNodes = cfg.IncludeNodes
	out.Divisions = cfg.Divisions
	out.WithDasha = cfg.WithDasha

	if cfg.AspectTable != "" {
		table, err := aspects.LoadTable(cfg.AspectTable)
		if err != nil {
			return out, err
		}
		out.Aspects = table
	}
	if cfg.YogaCatalog != "" {
		catalog, err := yoga.LoadCatalog(cfg.YogaCatalog)
		if err != nil {
			return out, err
		}
		out.Catalog = catalog
	}
	return out, nil
}

// isDefect reports whether an error belongs to the programming-defect class
// rather than bad user input or configuration.
func isDefect(err error) bool {
	return errors.Is(err, engine.ErrIncompleteChart) || errors.Is(err, houses.ErrInvalidObliquity)
}

// provider opens the configured ephemeris table.
func provider(cfg config.Config) (ephem.Provider, error) {
	if cfg.EphemerisTable == "" {
		return nil, fmt.Errorf("no ephemeris table configured (set --ephemeris, GRAHA_EPHEMERIS_TABLE, or ephemeris_table in .graha.yaml)")
	}
	return ephem.LoadTable(cfg.EphemerisTable)
}
