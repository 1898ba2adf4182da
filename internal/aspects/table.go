// Package aspects detects angular relationships between bodies. Which
// angles count, and how much deviation each tolerates, is versioned table
// data rather than code: the built-in table carries the classical values and
// a TOML file can replace it wholesale.
package aspects

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/rgopan/graha/internal/chart"
)

// ErrBadTable indicates an aspect table that failed validation.
var ErrBadTable = errors.New("invalid aspect table")

// Def is one target angle with its orb tolerance.
type Def struct {
	Name  string  `toml:"name"`
	Angle float64 `toml:"angle"` // target separation, degrees [0, 180]
	Orb   float64 `toml:"orb"`   // allowed deviation, degrees
}

// Table is a versioned aspect configuration: the universal angles applied to
// every pair, per-body special angles granted on top of them, and the orb
// bonus luminaries receive.
type Table struct {
	Version string `toml:"version"`

	// Universal aspects apply to every body pair.
	Universal []Def `toml:"universal"`

	// Special holds extra aspect angles certain bodies cast beyond the
	// universal set, keyed by body name. Per-body data, not special-cased
	// code, so new grants are a table edit.
	Special map[string][]Def `toml:"special"`

	// LuminaryOrbBonus widens the orb of universal aspects when either body
	// is a luminary.
	LuminaryOrbBonus float64 `toml:"luminary_orb_bonus"`
}

// Builtin returns the default table. Universal angles and orbs follow the
// classical values; the special grants are the Vedic extra aspects of Mars
// (4th and 8th), Jupiter (5th and 9th) and Saturn (3rd and 10th), expressed
// as separations.
func Builtin() Table {
	return Table{
		Version: "1",
		Universal: []Def{
			{Name: "conjunction", Angle: 0, Orb: 10},
			{Name: "sextile", Angle: 60, Orb: 6},
			{Name: "square", Angle: 90, Orb: 8},
			{Name: "trine", Angle: 120, Orb: 8},
			{Name: "opposition", Angle: 180, Orb: 10},
		},
		Special: map[string][]Def{
			chart.Mars.String(): {
				{Name: "mars_4th", Angle: 90, Orb: 5},
				{Name: "mars_8th", Angle: 150, Orb: 5},
			},
			chart.Jupiter.String(): {
				{Name: "jupiter_trinal", Angle: 120, Orb: 5},
			},
			chart.Saturn.String(): {
				{Name: "saturn_3rd", Angle: 60, Orb: 5},
				{Name: "saturn_10th", Angle: 90, Orb: 5},
			},
		},
		LuminaryOrbBonus: 2,
	}
}

// LoadTable reads and validates an aspect table from a TOML file.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("aspects: reading table: %w", err)
	}
	var t Table
	if err := toml.Unmarshal(data, &t); err != nil {
		return Table{}, fmt.Errorf("aspects: parsing %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Table{}, fmt.Errorf("aspects: %s: %w", path, err)
	}
	return t, nil
}

// Validate checks the table's structural invariants.
func (t Table) Validate() error {
	if t.Version == "" {
		return fmt.Errorf("%w: missing version", ErrBadTable)
	}
	if len(t.Universal) == 0 {
		return fmt.Errorf("%w: no universal aspects", ErrBadTable)
	}
	check := func(where string, d Def) error {
		if d.Name == "" {
			return fmt.Errorf("%w: %s: unnamed aspect", ErrBadTable, where)
		}
		if d.Angle < 0 || d.Angle > 180 {
			return fmt.Errorf("%w: %s: angle %.2f outside [0, 180]", ErrBadTable, where, d.Angle)
		}
		if d.Orb <= 0 {
			return fmt.Errorf("%w: %s: orb %.2f must be positive", ErrBadTable, where, d.Orb)
		}
		return nil
	}
	for _, d := range t.Universal {
		if err := check("universal", d); err != nil {
			return err
		}
	}
	for bodyName, defs := range t.Special {
		if _, err := chart.ParseBody(bodyName); err != nil {
			return fmt.Errorf("%w: special: %v", ErrBadTable, err)
		}
		for _, d := range defs {
			if err := check("special/"+bodyName, d); err != nil {
				return err
			}
		}
	}
	if t.LuminaryOrbBonus < 0 {
		return fmt.Errorf("%w: negative luminary orb bonus", ErrBadTable)
	}
	return nil
}
