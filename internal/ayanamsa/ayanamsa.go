// Package ayanamsa converts tropical longitudes into sidereal ones. Each
// supported model is a closed-form function of time: a base offset at
// J2000.0 advanced by an annual precession rate. That keeps the correction
// monotonic and continuous, so house-boundary crossings near a cusp stay
// numerically stable.
package ayanamsa

import (
	"errors"
	"fmt"

	"github.com/rgopan/graha/internal/astrotime"
	"github.com/rgopan/graha/internal/chart"
)

// ErrUnsupportedAyanamsa indicates an unrecognized model identifier. The
// engine never silently falls back to a default model.
var ErrUnsupportedAyanamsa = errors.New("unsupported ayanamsa model")

// Model identifies an ayanamsa calculation model.
type Model string

// The supported ayanamsa models. Lahiri is the Indian government standard.
const (
	Lahiri       Model = "lahiri"
	Raman        Model = "raman"
	Krishnamurti Model = "krishnamurti"
	Yukteshwar   Model = "yukteshwar"
	FaganBradley Model = "fagan_bradley"
)

// modelParams holds the closed-form coefficients: the ayanamsa in degrees at
// J2000.0 and the annual precession rate in arcseconds per Julian year.
type modelParams struct {
	base       float64
	precession float64
}

var models = map[Model]modelParams{
	Lahiri:       {base: 23.85, precession: 50.2388475},
	Raman:        {base: 22.50, precession: 50.2388475},
	Krishnamurti: {base: 23.00, precession: 50.2388475},
	Yukteshwar:   {base: 22.00, precession: 50.2388475},
	FaganBradley: {base: 24.00, precession: 50.2388475},
}

// Parse resolves a model identifier from configuration.
func Parse(name string) (Model, error) {
	m := Model(name)
	if _, ok := models[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAyanamsa, name)
	}
	return m, nil
}

// Models returns the supported model identifiers in stable order.
func Models() []Model {
	return []Model{Lahiri, Raman, Krishnamurti, Yukteshwar, FaganBradley}
}

// Value returns the ayanamsa in degrees at the given Julian Day (UT).
func Value(model Model, jdUT float64) (float64, error) {
	p, ok := models[model]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAyanamsa, string(model))
	}
	years := (jdUT - astrotime.J2000) / 365.25
	return p.base + p.precession*years/3600, nil
}

// Apply converts a tropical longitude to sidereal using a precomputed
// ayanamsa value, normalized into [0, 360).
func Apply(tropicalLongitude, ayanamsa float64) float64 {
	return chart.Norm360(tropicalLongitude - ayanamsa)
}
