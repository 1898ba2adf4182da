// Package chart defines the data model shared by every calculation stage:
// celestial bodies, zodiac signs, nakshatras, positions, placements, and the
// BirthChart aggregate the engine emits. The package holds vocabulary only;
// all computation lives in the sibling packages that import it.
package chart

import "fmt"

// Body identifies a celestial body in the closed Vedic set. The numeric
// order is the traditional graha order and doubles as the canonical ordering
// for aspect pairs.
type Body int

// The nine grahas in canonical computation order.
const (
	Sun Body = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu // mean lunar north node
	Ketu // south node, always opposite Rahu
)

var bodyNames = [...]string{
	Sun:     "Sun",
	Moon:    "Moon",
	Mars:    "Mars",
	Mercury: "Mercury",
	Jupiter: "Jupiter",
	Venus:   "Venus",
	Saturn:  "Saturn",
	Rahu:    "Rahu",
	Ketu:    "Ketu",
}

// String returns the English body name.
func (b Body) String() string {
	if b < Sun || b > Ketu {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

// Valid reports whether b is a member of the closed body set.
func (b Body) Valid() bool { return b >= Sun && b <= Ketu }

// IsLuminary reports whether b is the Sun or Moon. Luminaries receive wider
// aspect orbs.
func (b Body) IsLuminary() bool { return b == Sun || b == Moon }

// IsNode reports whether b is a shadow point (Rahu or Ketu) rather than a
// physical body.
func (b Body) IsNode() bool { return b == Rahu || b == Ketu }

// MarshalText serializes the body by name so map keys and fields survive a
// JSON round trip.
func (b Body) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("chart: cannot marshal invalid body %d", int(b))
	}
	return []byte(bodyNames[b]), nil
}

// UnmarshalText restores a body from its name.
func (b *Body) UnmarshalText(text []byte) error {
	parsed, err := ParseBody(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseBody resolves a body name as used in catalogs and configuration.
func ParseBody(name string) (Body, error) {
	for i, n := range bodyNames {
		if n == name {
			return Body(i), nil
		}
	}
	return 0, fmt.Errorf("chart: unknown body %q", name)
}

// Bodies returns the body set in canonical order. When withNodes is false the
// shadow points Rahu and Ketu are omitted, giving the seven classical grahas.
func Bodies(withNodes bool) []Body {
	if withNodes {
		return []Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}
	}
	return []Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}
}
