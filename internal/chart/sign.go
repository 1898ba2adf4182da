package chart

import (
	"fmt"
	"math"
)

// Sign identifies a zodiac sign, numbered 0 (Aries) through 11 (Pisces).
// Each sign spans exactly 30 degrees of the ecliptic.
type Sign int

// The twelve signs in zodiacal order, Aries first.
const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [...]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Sign lords in the natural zodiac. Rahu and Ketu own no sign.
var signLords = [...]Body{
	Aries:       Mars,
	Taurus:      Venus,
	Gemini:      Mercury,
	Cancer:      Moon,
	Leo:         Sun,
	Virgo:       Mercury,
	Libra:       Venus,
	Scorpio:     Mars,
	Sagittarius: Jupiter,
	Capricorn:   Saturn,
	Aquarius:    Saturn,
	Pisces:      Jupiter,
}

// String returns the English sign name.
func (s Sign) String() string {
	if s < Aries || s > Pisces {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

// Lord returns the planetary ruler of the sign in the natural zodiac.
func (s Sign) Lord() Body { return signLords[s] }

// Start returns the ecliptic longitude at which the sign begins.
func (s Sign) Start() float64 { return float64(s) * 30 }

// MarshalText serializes the sign by name.
func (s Sign) MarshalText() ([]byte, error) {
	if s < Aries || s > Pisces {
		return nil, fmt.Errorf("chart: cannot marshal invalid sign %d", int(s))
	}
	return []byte(signNames[s]), nil
}

// UnmarshalText restores a sign from its name.
func (s *Sign) UnmarshalText(text []byte) error {
	for i, n := range signNames {
		if n == string(text) {
			*s = Sign(i)
			return nil
		}
	}
	return fmt.Errorf("chart: unknown sign %q", string(text))
}

// SignOf returns the sign containing the given ecliptic longitude. Boundaries
// are lower-inclusive: a longitude of exactly 30.0 is Taurus, not Aries.
func SignOf(longitude float64) Sign {
	return Sign(int(Norm360(longitude) / 30))
}

// Norm360 normalizes an angle in degrees into [0, 360).
func Norm360(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}
