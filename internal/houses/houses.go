// Package houses computes the Ascendant and assigns bodies to houses. The
// default system is the South Indian whole-sign convention: house 1 is the
// full 30-degree sign containing the Ascendant, and houses 2 through 12 are
// the following signs in zodiacal order. Quadrant systems with unequal cusps
// are deliberately not implemented; asking for one is a configuration error,
// not an approximation.
package houses

import (
	"errors"
	"fmt"
	"math"

	"github.com/rgopan/graha/internal/astrotime"
	"github.com/rgopan/graha/internal/chart"
)

var (
	// ErrInvalidObliquity indicates the obliquity polynomial produced a value
	// outside the sane physical band. This is a programming-error class
	// failure, never expected for real birth dates.
	ErrInvalidObliquity = errors.New("obliquity outside physical range")

	// ErrUnsupportedSystem indicates an unrecognized house system identifier.
	ErrUnsupportedSystem = errors.New("unsupported house system")
)

// System identifies a house system. The resolver is parameterized on it so
// further systems can be added without touching callers.
type System string

const (
	// WholeSign anchors house boundaries at sign boundaries, starting from
	// the Ascendant's sign. This is the South Indian convention.
	WholeSign System = "whole_sign"

	// Equal divides the ecliptic into twelve 30-degree houses starting at
	// the exact Ascendant degree.
	Equal System = "equal"
)

// ParseSystem resolves a house system identifier from configuration.
func ParseSystem(name string) (System, error) {
	switch System(name) {
	case WholeSign, Equal:
		return System(name), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedSystem, name)
}

// Obliquity returns the mean obliquity of the ecliptic in degrees at the
// given Julian Day, via the IAU polynomial in centuries since J2000.0. The
// result is checked against a defensive 21..25 degree band.
func Obliquity(jdUT float64) (float64, error) {
	t := (jdUT - astrotime.J2000) / astrotime.JulianCentury
	eps := 23.43929111 - 0.01300417*t - 1.64e-7*t*t + 5.04e-7*t*t*t
	if eps < 21 || eps > 25 {
		return 0, fmt.Errorf("%w: %.6f at JD %.6f", ErrInvalidObliquity, eps, jdUT)
	}
	return eps, nil
}

// Ascendant returns the sidereal longitude rising on the eastern horizon.
// The tropical rising degree follows the standard formula
//
//	asc = atan2(cos(RAMC), -(sin(RAMC)·cos(eps) + tan(lat)·sin(eps)))
//
// with RAMC the local sidereal time in degrees, resolved through atan2 into
// the correct quadrant, then shifted into the sidereal frame by the
// ayanamsa.
func Ascendant(jm astrotime.Julian, latitude, ayanamsaValue float64) (float64, error) {
	eps, err := Obliquity(jm.Day)
	if err != nil {
		return 0, err
	}

	ramc := jm.SiderealTime * math.Pi / 180
	epsR := eps * math.Pi / 180
	latR := latitude * math.Pi / 180

	y := math.Cos(ramc)
	x := -(math.Sin(ramc)*math.Cos(epsR) + math.Tan(latR)*math.Sin(epsR))
	tropical := chart.Norm360(math.Atan2(y, x) * 180 / math.Pi)

	return chart.Norm360(tropical - ayanamsaValue), nil
}

// Cusps returns the twelve house cusps for the given system and sidereal
// Ascendant. Under WholeSign the cusps are sign starts; under Equal they are
// 30-degree steps from the exact Ascendant degree.
func Cusps(system System, ascendant float64) ([]chart.HouseCusp, error) {
	var start float64
	switch system {
	case WholeSign:
		start = chart.SignOf(ascendant).Start()
	case Equal:
		start = chart.Norm360(ascendant)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSystem, string(system))
	}

	cusps := make([]chart.HouseCusp, 12)
	for i := range cusps {
		cusps[i] = chart.HouseCusp{
			House:     i + 1,
			Longitude: chart.Norm360(start + float64(i)*30),
		}
	}
	return cusps, nil
}

// House returns the house index in 1..12 occupied by a sidereal longitude.
// Boundaries are lower-inclusive: a longitude exactly on a cusp belongs to
// the house that starts there.
func House(system System, ascendant, longitude float64) (int, error) {
	var start float64
	switch system {
	case WholeSign:
		start = chart.SignOf(ascendant).Start()
	case Equal:
		start = chart.Norm360(ascendant)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedSystem, string(system))
	}
	offset := chart.Norm360(longitude - start)
	return 1 + int(offset/30)%12, nil
}

// Assign places every position into its house. The result is a total
// mapping: each body appears exactly once.
func Assign(system System, ascendant float64, positions []chart.SiderealPosition) (chart.HousePlacement, error) {
	placement := make(chart.HousePlacement, len(positions))
	for _, p := range positions {
		h, err := House(system, ascendant, p.Longitude)
		if err != nil {
			return nil, err
		}
		placement[p.Body] = h
	}
	return placement, nil
}
