// Package dasha computes the Vimshottari planetary period timeline. The
// Moon's nakshatra at birth selects the opening lord; the fraction of the
// nakshatra not yet traversed scales the opening period; the remaining lords
// follow in the fixed 120-year cycle.
package dasha

import (
	"time"

	"github.com/rgopan/graha/internal/chart"
)

// CycleYears is the length of one full Vimshottari cycle.
const CycleYears = 120.0

// yearDays converts Vimshottari years to days (Julian years).
const yearDays = 365.25

// sequence is the fixed Vimshottari lord order; it matches the repeating
// nakshatra lord cycle starting at Ashwini.
var sequence = [9]chart.Body{
	chart.Ketu, chart.Venus, chart.Sun, chart.Moon, chart.Mars,
	chart.Rahu, chart.Jupiter, chart.Saturn, chart.Mercury,
}

// periodYears holds each lord's mahadasha length in years. The nine periods
// sum to the 120-year cycle.
var periodYears = map[chart.Body]float64{
	chart.Ketu:    7,
	chart.Venus:   20,
	chart.Sun:     6,
	chart.Moon:    10,
	chart.Mars:    7,
	chart.Rahu:    18,
	chart.Jupiter: 16,
	chart.Saturn:  19,
	chart.Mercury: 17,
}

// Years returns the mahadasha length in years for a lord, or zero for a
// body with no Vimshottari period.
func Years(lord chart.Body) float64 { return periodYears[lord] }

// Timeline computes the full mahadasha sequence from birth, with one level
// of antardashas inside each mahadasha. The opening mahadasha is truncated
// to the balance remaining at birth; its antardashas are computed for the
// full period and clipped, so the running antardasha at birth is correct.
func Timeline(birth time.Time, moonSiderealLongitude float64) []chart.DashaPeriod {
	nak, remaining := chart.NakshatraBalance(moonSiderealLongitude)
	startIdx := (nak - 1) % 9
	firstLord := sequence[startIdx]

	// The opening period began before birth: back-date its virtual start so
	// sub-periods land correctly, then clip everything to the birth instant.
	firstFull := periodYears[firstLord]
	elapsed := (1 - remaining) * firstFull
	virtualStart := addYears(birth, -elapsed)

	var out []chart.DashaPeriod
	cursor := virtualStart
	for i := 0; i < 9; i++ {
		lord := sequence[(startIdx+i)%9]
		years := periodYears[lord]
		end := addYears(cursor, years)

		p := chart.DashaPeriod{
			Lord:  lord,
			Start: clipStart(cursor, birth),
			End:   end,
			Sub:   antardashas(lord, cursor, years, birth),
		}
		out = append(out, p)
		cursor = end
	}
	return out
}

// antardashas splits a mahadasha into nine sub-periods starting from the
// mahadasha lord, each proportional to its own cycle share. Sub-periods
// ending before birth are dropped; one straddling birth is clipped.
func antardashas(lord chart.Body, mahaStart time.Time, mahaYears float64, birth time.Time) []chart.DashaPeriod {
	startIdx := 0
	for i, b := range sequence {
		if b == lord {
			startIdx = i
			break
		}
	}

	var subs []chart.DashaPeriod
	cursor := mahaStart
	for i := 0; i < 9; i++ {
		sub := sequence[(startIdx+i)%9]
		years := mahaYears * periodYears[sub] / CycleYears
		end := addYears(cursor, years)
		if end.After(birth) {
			subs = append(subs, chart.DashaPeriod{
				Lord:  sub,
				Start: clipStart(cursor, birth),
				End:   end,
			})
		}
		cursor = end
	}
	return subs
}

func addYears(t time.Time, years float64) time.Time {
	return t.Add(time.Duration(years * yearDays * 24 * float64(time.Hour)))
}

func clipStart(start, birth time.Time) time.Time {
	if start.Before(birth) {
		return birth
	}
	return start
}
