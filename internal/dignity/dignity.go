// Package dignity classifies how well each body is placed in its sidereal
// sign: exaltation, moolatrikona, own sign, or a friendship grade derived
// from the sign lord. The tables are the classical ones; they feed both the
// aspect engine's strength attributes and the yoga catalog's dignity-gated
// rules.
package dignity

import "github.com/rgopan/graha/internal/chart"

// exaltation holds the exaltation sign and deep-exaltation degree for the
// seven classical grahas. The debilitation sign is always the opposite one.
var exaltation = map[chart.Body]struct {
	sign   chart.Sign
	degree float64
}{
	chart.Sun:     {chart.Aries, 10},
	chart.Moon:    {chart.Taurus, 3},
	chart.Mars:    {chart.Capricorn, 28},
	chart.Mercury: {chart.Virgo, 15},
	chart.Jupiter: {chart.Cancer, 5},
	chart.Venus:   {chart.Pisces, 27},
	chart.Saturn:  {chart.Libra, 20},
}

var moolatrikona = map[chart.Body]chart.Sign{
	chart.Sun:     chart.Leo,
	chart.Moon:    chart.Taurus,
	chart.Mars:    chart.Aries,
	chart.Mercury: chart.Virgo,
	chart.Jupiter: chart.Sagittarius,
	chart.Venus:   chart.Libra,
	chart.Saturn:  chart.Aquarius,
}

// friendships holds the natural relationships between the classical grahas.
// Pairs absent from both sets are neutral.
var friendships = map[chart.Body]struct {
	friends []chart.Body
	enemies []chart.Body
}{
	chart.Sun:     {friends: []chart.Body{chart.Moon, chart.Mars, chart.Jupiter}, enemies: []chart.Body{chart.Venus, chart.Saturn}},
	chart.Moon:    {friends: []chart.Body{chart.Sun, chart.Mercury}, enemies: []chart.Body{chart.Saturn}},
	chart.Mars:    {friends: []chart.Body{chart.Sun, chart.Moon, chart.Jupiter}, enemies: []chart.Body{chart.Mercury}},
	chart.Mercury: {friends: []chart.Body{chart.Sun, chart.Venus}, enemies: []chart.Body{chart.Moon}},
	chart.Jupiter: {friends: []chart.Body{chart.Sun, chart.Moon, chart.Mars}, enemies: []chart.Body{chart.Mercury, chart.Venus}},
	chart.Venus:   {friends: []chart.Body{chart.Mercury, chart.Saturn}, enemies: []chart.Body{chart.Sun, chart.Moon}},
	chart.Saturn:  {friends: []chart.Body{chart.Mercury, chart.Venus}, enemies: []chart.Body{chart.Sun, chart.Moon, chart.Mars}},
}

// Relation returns how body a naturally regards body b.
func Relation(a, b chart.Body) chart.Dignity {
	rel, ok := friendships[a]
	if !ok {
		return chart.Neutral
	}
	for _, f := range rel.friends {
		if f == b {
			return chart.Friendly
		}
	}
	for _, e := range rel.enemies {
		if e == b {
			return chart.Inimical
		}
	}
	return chart.Neutral
}

// Assess classifies the placement of a body at a sidereal longitude.
// Precedence follows the classical ordering: exaltation, then debilitation,
// then moolatrikona, then own sign, then the relationship with the sign
// lord. Shadow points are always neutral; they own no sign.
func Assess(body chart.Body, siderealLongitude float64) chart.Dignity {
	if body.IsNode() {
		return chart.Neutral
	}
	sign := chart.SignOf(siderealLongitude)

	if ex, ok := exaltation[body]; ok {
		if sign == ex.sign {
			return chart.Exalted
		}
		if sign == (ex.sign+6)%12 {
			return chart.Debilitated
		}
	}
	if moolatrikona[body] == sign {
		return chart.Moolatrikona
	}
	if sign.Lord() == body {
		return chart.OwnSign
	}
	return Relation(body, sign.Lord())
}
