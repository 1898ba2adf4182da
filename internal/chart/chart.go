package chart

import (
	"time"

	"github.com/rgopan/graha/internal/astrotime"
)

// PlanetaryPosition is a raw geocentric ephemeris result in the tropical
// frame. Longitude is always normalized into [0, 360).
type PlanetaryPosition struct {
	Body       Body    `json:"body"`
	Longitude  float64 `json:"longitude"` // tropical ecliptic degrees
	Latitude   float64 `json:"latitude"`  // ecliptic degrees
	Distance   float64 `json:"distance"`  // AU
	Speed      float64 `json:"speed"`     // longitude rate, degrees/day
	Retrograde bool    `json:"retrograde"`
}

// SiderealPosition is a tropical position corrected by the ayanamsa, with
// the derived sign, nakshatra and dignity attached.
type SiderealPosition struct {
	Body       Body      `json:"body"`
	Longitude  float64   `json:"longitude"` // sidereal degrees [0, 360)
	Sign       Sign      `json:"sign"`
	Nakshatra  Nakshatra `json:"nakshatra"`
	Dignity    Dignity   `json:"dignity"`
	Retrograde bool      `json:"retrograde"`
}

// Dignity classifies how well a body is placed in its sign.
type Dignity string

// Dignity states, strongest to weakest.
const (
	Exalted      Dignity = "exalted"
	Moolatrikona Dignity = "moolatrikona"
	OwnSign      Dignity = "own"
	Friendly     Dignity = "friend"
	Neutral      Dignity = "neutral"
	Inimical     Dignity = "enemy"
	Debilitated  Dignity = "debilitated"
)

// HouseCusp is the sidereal longitude at which a house begins. House 1's
// cusp region contains the Ascendant.
type HouseCusp struct {
	House     int     `json:"house"` // 1..12
	Longitude float64 `json:"longitude"`
}

// HousePlacement maps every body to exactly one house index in 1..12.
type HousePlacement map[Body]int

// AspectStrength grades an aspect by its deviation from exactness.
type AspectStrength string

// Strength bands, assigned by thirds of the matched orb.
const (
	Exact AspectStrength = "exact"
	Close AspectStrength = "close"
	Wide  AspectStrength = "wide"
)

// Aspect is a detected angular relationship between two bodies. Pairs are
// canonically ordered with the lower body id first, so equal charts produce
// identical aspect sets.
type Aspect struct {
	A        Body           `json:"a"`
	B        Body           `json:"b"`
	Name     string         `json:"name"`
	Angle    float64        `json:"angle"`     // target angle in degrees
	Orb      float64        `json:"orb"`       // deviation from exact, degrees
	Special  bool           `json:"special"`   // a per-body Vedic aspect rather than a universal one
	Strength AspectStrength `json:"strength"`
}

// YogaResult records one matched catalog rule with its evidence trail.
type YogaResult struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
	Bodies  []Body `json:"bodies,omitempty"`
	Houses  []int  `json:"houses,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// DashaPeriod is one planetary period in the Vimshottari timeline. Sub
// holds the first-level antardashas of a mahadasha.
type DashaPeriod struct {
	Lord  Body          `json:"lord"`
	Start time.Time     `json:"start"`
	End   time.Time     `json:"end"`
	Sub   []DashaPeriod `json:"sub,omitempty"`
}

// DivisionalChart holds the sign placements of one varga (D9, D12, ...).
type DivisionalChart struct {
	Division string        `json:"division"`
	Signs    map[Body]Sign `json:"signs"`
}

// BirthChart is the aggregate root the engine emits: the validated input,
// its normalized time scales, and every derived layer. It is constructed
// once per computation and never mutated afterwards.
type BirthChart struct {
	Moment astrotime.Moment `json:"moment"`
	Julian astrotime.Julian `json:"julian"`

	Ayanamsa      string  `json:"ayanamsa"`
	AyanamsaValue float64 `json:"ayanamsa_value"`
	HouseSystem   string  `json:"house_system"`

	Ascendant float64            `json:"ascendant"` // sidereal degrees
	Cusps     []HouseCusp        `json:"cusps"`
	Positions []SiderealPosition `json:"positions"` // canonical body order
	Houses    HousePlacement     `json:"houses"`
	Aspects   []Aspect           `json:"aspects"`
	Yogas     []YogaResult       `json:"yogas"`

	Vargas []DivisionalChart `json:"vargas,omitempty"`
	Dashas []DashaPeriod     `json:"dashas,omitempty"`
}

// Position returns the sidereal position of the given body, or false when
// the body was not part of the computation.
func (c *BirthChart) Position(b Body) (SiderealPosition, bool) {
	for _, p := range c.Positions {
		if p.Body == b {
			return p, true
		}
	}
	return SiderealPosition{}, false
}
