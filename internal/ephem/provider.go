// Package ephem abstracts the geocentric ephemeris the engine consumes.
// The engine never computes raw planetary positions itself; it asks a
// Provider and layers the sidereal, house, aspect and yoga transformations
// on top. Providers must be deterministic for a given (time, body) pair and
// safe for concurrent use.
package ephem

import (
	"errors"
	"fmt"

	"github.com/rgopan/graha/internal/chart"
)

// ErrNoData indicates the provider holds no position for the requested
// (time, body) pair. Providers backed by finite tables return it wrapped
// with the offending request; the engine propagates it unchanged rather
// than substituting an approximate position.
var ErrNoData = errors.New("ephemeris data unavailable")

// Position is the raw geocentric result the provider contract defines:
// tropical ecliptic coordinates plus the longitude rate, whose sign carries
// the retrograde flag.
type Position struct {
	Longitude float64 // tropical ecliptic degrees [0, 360)
	Latitude  float64 // ecliptic degrees
	Distance  float64 // AU
	Speed     float64 // longitude rate, degrees/day; negative when retrograde
}

// Provider supplies geocentric positions for a body at a Julian Day (UT).
// Implementations must be usable from multiple concurrent chart
// computations.
type Provider interface {
	Position(jdUT float64, body chart.Body) (Position, error)
}

// Lookup resolves a body against the provider, synthesizing Ketu from Rahu:
// Ketu is the point opposite the mean node, so its longitude is Rahu's plus
// 180 degrees and its rate is Rahu's negated. Providers therefore only need
// to carry the mean node itself.
func Lookup(p Provider, jdUT float64, body chart.Body) (Position, error) {
	if body == chart.Ketu {
		rahu, err := p.Position(jdUT, chart.Rahu)
		if err != nil {
			return Position{}, err
		}
		return Position{
			Longitude: chart.Norm360(rahu.Longitude + 180),
			Latitude:  -rahu.Latitude,
			Distance:  rahu.Distance,
			Speed:     -rahu.Speed,
		}, nil
	}
	pos, err := p.Position(jdUT, body)
	if err != nil {
		return Position{}, fmt.Errorf("ephem: %s at JD %.6f: %w", body, jdUT, err)
	}
	pos.Longitude = chart.Norm360(pos.Longitude)
	return pos, nil
}
