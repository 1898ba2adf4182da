package aspects

import (
	"math"
	"sort"

	"github.com/rgopan/graha/internal/chart"
)

// Separation returns the angular separation between two longitudes: the
// shorter way around the circle, always in [0, 180].
func Separation(a, b float64) float64 {
	d := math.Abs(chart.Norm360(a) - chart.Norm360(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Strength grades a deviation against the allowed orb: the inner third is
// exact, the middle third close, the rest wide.
func Strength(deviation, orb float64) chart.AspectStrength {
	switch {
	case deviation <= orb/3:
		return chart.Exact
	case deviation <= 2*orb/3:
		return chart.Close
	default:
		return chart.Wide
	}
}

// Compute classifies every unordered body pair against the table. Pairs are
// reported in canonical order (lower body id first) and the result slice is
// sorted deterministically, so identical charts produce identical aspect
// sets. A pair may carry several aspects only when they target distinct
// angles; a special grant that duplicates an already-matched universal angle
// is suppressed.
func Compute(positions []chart.SiderealPosition, table Table) []chart.Aspect {
	var out []chart.Aspect

	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			a, b := positions[i], positions[j]
			if a.Body > b.Body {
				a, b = b, a
			}
			sep := Separation(a.Longitude, b.Longitude)
			luminary := a.Body.IsLuminary() || b.Body.IsLuminary()

			matched := make(map[float64]bool)

			for _, def := range table.Universal {
				orb := def.Orb
				if luminary {
					orb += table.LuminaryOrbBonus
				}
				dev := math.Abs(sep - def.Angle)
				if dev <= orb {
					matched[def.Angle] = true
					out = append(out, chart.Aspect{
						A: a.Body, B: b.Body,
						Name:     def.Name,
						Angle:    def.Angle,
						Orb:      dev,
						Strength: Strength(dev, orb),
					})
				}
			}

			for _, body := range []chart.Body{a.Body, b.Body} {
				for _, def := range table.Special[body.String()] {
					if matched[def.Angle] {
						continue
					}
					dev := math.Abs(sep - def.Angle)
					if dev <= def.Orb {
						matched[def.Angle] = true
						out = append(out, chart.Aspect{
							A: a.Body, B: b.Body,
							Name:     def.Name,
							Angle:    def.Angle,
							Orb:      dev,
							Special:  true,
							Strength: Strength(dev, def.Orb),
						})
					}
				}
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		if out[i].B != out[j].B {
			return out[i].B < out[j].B
		}
		return out[i].Angle < out[j].Angle
	})
	return out
}
