// Package varga computes divisional charts: each varga splits every sign
// into n equal arcs and maps each arc to a sign of its own, producing a
// derived chart at a finer level. D9 (navamsa), D12 (dwadasamsa) and D30
// (trimsamsa) carry special classical mapping rules; every other division
// uses the generic count-from-own-sign rule.
package varga

import (
	"errors"
	"fmt"

	"github.com/rgopan/graha/internal/chart"
)

// ErrBadDivision indicates a division level outside the supported range.
var ErrBadDivision = errors.New("division out of range")

// MaxDivision bounds the generic rule; classical vargas stop at D60.
const MaxDivision = 60

// SignAt returns the varga sign for one sidereal longitude at the given
// division level.
func SignAt(division int, longitude float64) (chart.Sign, error) {
	if division < 1 || division > MaxDivision {
		return 0, fmt.Errorf("%w: D%d", ErrBadDivision, division)
	}
	lon := chart.Norm360(longitude)
	sign := chart.SignOf(lon)
	within := lon - sign.Start()

	switch division {
	case 1:
		return sign, nil
	case 9:
		return navamsa(sign, within), nil
	case 30:
		return trimsamsa(sign, within), nil
	default:
		// Generic rule (also the classical D12 rule): the k-th arc maps to
		// the k-th sign counted from the occupied sign itself.
		arc := 30.0 / float64(division)
		k := int(within / arc)
		return chart.Sign((int(sign) + k) % 12), nil
	}
}

// navamsa maps one of nine 3°20' arcs to a sign, starting from the movable
// sign of the occupied sign's element: fire from Aries, earth from Cancer,
// air from Libra, water from Capricorn.
func navamsa(sign chart.Sign, within float64) chart.Sign {
	k := int(within / (30.0 / 9))
	start := [4]chart.Sign{chart.Aries, chart.Cancer, chart.Libra, chart.Capricorn}[int(sign)%4]
	return chart.Sign((int(start) + k) % 12)
}

// trimsamsaSegment is one unequal trimsamsa arc mapped to the sign owned by
// its ruling planet.
type trimsamsaSegment struct {
	until float64 // exclusive upper bound in degrees within the sign
	sign  chart.Sign
}

// Classical unequal arcs: odd signs run Mars, Saturn, Jupiter, Mercury,
// Venus; even signs the same rulers in reverse order.
var (
	trimsamsaOdd = []trimsamsaSegment{
		{5, chart.Aries}, {10, chart.Aquarius}, {18, chart.Sagittarius},
		{25, chart.Gemini}, {30, chart.Libra},
	}
	trimsamsaEven = []trimsamsaSegment{
		{5, chart.Taurus}, {12, chart.Virgo}, {20, chart.Pisces},
		{25, chart.Capricorn}, {30, chart.Scorpio},
	}
)

func trimsamsa(sign chart.Sign, within float64) chart.Sign {
	segs := trimsamsaOdd
	if int(sign)%2 == 1 { // Taurus, Cancer, ... are the even signs
		segs = trimsamsaEven
	}
	for _, s := range segs {
		if within < s.until {
			return s.sign
		}
	}
	return segs[len(segs)-1].sign
}

// Compute builds the divisional chart for every position at one level.
func Compute(division int, positions []chart.SiderealPosition) (chart.DivisionalChart, error) {
	signs := make(map[chart.Body]chart.Sign, len(positions))
	for _, p := range positions {
		s, err := SignAt(division, p.Longitude)
		if err != nil {
			return chart.DivisionalChart{}, err
		}
		signs[p.Body] = s
	}
	return chart.DivisionalChart{
		Division: fmt.Sprintf("D%d", division),
		Signs:    signs,
	}, nil
}
