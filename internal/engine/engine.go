// Package engine assembles birth charts. Compute runs the full pipeline
// (time normalization, ephemeris lookup, ayanamsa correction, house
// resolution, aspect detection, yoga evaluation, and the supplemental varga
// and dasha layers) and returns the immutable BirthChart aggregate. The
// computation is a pure function of its inputs and configuration; concurrent
// calls share nothing but the ephemeris provider.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rgopan/graha/internal/aspects"
	"github.com/rgopan/graha/internal/astrotime"
	"github.com/rgopan/graha/internal/ayanamsa"
	"github.com/rgopan/graha/internal/chart"
	"github.com/rgopan/graha/internal/dasha"
	"github.com/rgopan/graha/internal/dignity"
	"github.com/rgopan/graha/internal/ephem"
	"github.com/rgopan/graha/internal/houses"
	"github.com/rgopan/graha/internal/varga"
	"github.com/rgopan/graha/internal/yoga"
)

// ErrIncompleteChart indicates the assembled chart violated a closing
// invariant. It signals a defect in an upstream stage, never a user error,
// and is never returned alongside a partial chart.
var ErrIncompleteChart = errors.New("incomplete chart")

// Config is the full configuration of one computation, passed explicitly so
// the engine holds no ambient state.
type Config struct {
	Ayanamsa     ayanamsa.Model
	HouseSystem  houses.System
	IncludeNodes bool          // include Rahu and Ketu
	Aspects      aspects.Table
	Catalog      yoga.Catalog
	Divisions    []int // divisional chart levels to compute, e.g. 9, 12, 30
	WithDasha    bool  // compute the Vimshottari timeline
}

// DefaultConfig returns the conventional setup: Lahiri ayanamsa, South
// Indian whole-sign houses, nodes included, built-in aspect table and yoga
// catalog, the navamsa as the one divisional chart, and the dasha timeline.
func DefaultConfig() Config {
	return Config{
		Ayanamsa:     ayanamsa.Lahiri,
		HouseSystem:  houses.WholeSign,
		IncludeNodes: true,
		Aspects:      aspects.Builtin(),
		Catalog:      yoga.Builtin(),
		Divisions:    []int{9},
		WithDasha:    true,
	}
}

// Compute runs the full pipeline for one birth moment. Provider errors
// propagate unchanged; the engine never substitutes approximate positions.
func Compute(m astrotime.Moment, provider ephem.Provider, cfg Config) (*chart.BirthChart, error) {
	moment, err := astrotime.NewMoment(m)
	if err != nil {
		return nil, err
	}
	jm := astrotime.Resolve(moment)

	ayaValue, err := ayanamsa.Value(cfg.Ayanamsa, jm.Day)
	if err != nil {
		return nil, err
	}

	positions, err := siderealPositions(provider, jm.Day, ayaValue, cfg.IncludeNodes)
	if err != nil {
		return nil, err
	}

	asc, err := houses.Ascendant(jm, moment.Latitude, ayaValue)
	if err != nil {
		return nil, err
	}
	cusps, err := houses.Cusps(cfg.HouseSystem, asc)
	if err != nil {
		return nil, err
	}
	placement, err := houses.Assign(cfg.HouseSystem, asc, positions)
	if err != nil {
		return nil, err
	}

	c := &chart.BirthChart{
		Moment:        moment,
		Julian:        jm,
		Ayanamsa:      string(cfg.Ayanamsa),
		AyanamsaValue: ayaValue,
		HouseSystem:   string(cfg.HouseSystem),
		Ascendant:     asc,
		Cusps:         cusps,
		Positions:     positions,
		Houses:        placement,
		Aspects:       aspects.Compute(positions, cfg.Aspects),
	}

	yogas, err := yoga.Evaluate(c, cfg.Catalog)
	if err != nil {
		return nil, err
	}
	c.Yogas = yogas

	for _, div := range cfg.Divisions {
		dc, err := varga.Compute(div, positions)
		if err != nil {
			return nil, err
		}
		c.Vargas = append(c.Vargas, dc)
	}

	if cfg.WithDasha {
		moon, ok := c.Position(chart.Moon)
		if !ok {
			return nil, fmt.Errorf("%w: no Moon position for dasha timeline", ErrIncompleteChart)
		}
		c.Dashas = dasha.Timeline(birthTime(moment), moon.Longitude)
	}

	if err := verify(c, cfg); err != nil {
		return nil, err
	}
	return c, nil
}

// siderealPositions looks up every body, applies the ayanamsa, and attaches
// the derived sign, nakshatra and dignity.
func siderealPositions(provider ephem.Provider, jd, ayaValue float64, withNodes bool) ([]chart.SiderealPosition, error) {
	bodies := chart.Bodies(withNodes)
	out := make([]chart.SiderealPosition, 0, len(bodies))
	for _, body := range bodies {
		raw, err := ephem.Lookup(provider, jd, body)
		if err != nil {
			return nil, err
		}
		lon := ayanamsa.Apply(raw.Longitude, ayaValue)
		out = append(out, chart.SiderealPosition{
			Body:       body,
			Longitude:  lon,
			Sign:       chart.SignOf(lon),
			Nakshatra:  chart.NakshatraAt(lon),
			Dignity:    dignity.Assess(body, lon),
			Retrograde: raw.Speed < 0,
		})
	}
	return out, nil
}

// verify enforces the closing invariants: every body in exactly one house in
// 1..12, every longitude normalized, and the Ascendant's own position inside
// house 1.
func verify(c *chart.BirthChart, cfg Config) error {
	want := len(chart.Bodies(cfg.IncludeNodes))
	if len(c.Positions) != want || len(c.Houses) != want {
		return fmt.Errorf("%w: %d positions, %d placements, want %d",
			ErrIncompleteChart, len(c.Positions), len(c.Houses), want)
	}
	for _, p := range c.Positions {
		if p.Longitude < 0 || p.Longitude >= 360 {
			return fmt.Errorf("%w: %s longitude %.6f outside [0, 360)",
				ErrIncompleteChart, p.Body, p.Longitude)
		}
		h, ok := c.Houses[p.Body]
		if !ok || h < 1 || h > 12 {
			return fmt.Errorf("%w: %s assigned house %d", ErrIncompleteChart, p.Body, h)
		}
	}
	ascHouse, err := houses.House(houses.System(c.HouseSystem), c.Ascendant, c.Ascendant)
	if err != nil || ascHouse != 1 {
		return fmt.Errorf("%w: ascendant resolves to house %d", ErrIncompleteChart, ascHouse)
	}
	return nil
}

// birthTime renders the civil moment as a time.Time in its fixed offset
// zone, the anchor for the dasha timeline.
func birthTime(m astrotime.Moment) time.Time {
	zone := time.FixedZone("", int(m.OffsetHours*3600))
	sec := int(m.Second)
	nsec := int((m.Second - float64(sec)) * 1e9)
	return time.Date(m.Year, time.Month(m.Month), m.Day, m.Hour, m.Minute, sec, nsec, zone)
}
