package ephem

import "github.com/rgopan/graha/internal/chart"

// Fixed is an in-memory provider returning the same positions regardless of
// time. It backs tests and golden fixtures, where positions for the single
// moment under test are known in advance.
type Fixed struct {
	positions map[chart.Body]Position
}

// NewFixed builds a Fixed provider from a body-to-position map. The map is
// copied; later mutation of the argument does not affect the provider.
func NewFixed(positions map[chart.Body]Position) *Fixed {
	m := make(map[chart.Body]Position, len(positions))
	for b, p := range positions {
		p.Longitude = chart.Norm360(p.Longitude)
		m[b] = p
	}
	return &Fixed{positions: m}
}

// Position implements Provider. Bodies absent from the map yield ErrNoData.
func (f *Fixed) Position(_ float64, body chart.Body) (Position, error) {
	pos, ok := f.positions[body]
	if !ok {
		return Position{}, ErrNoData
	}
	return pos, nil
}
