package chart

import "math"

// NakshatraSpan is the arc of one lunar mansion: 360/27 degrees, 13°20'.
const NakshatraSpan = 360.0 / 27.0

var nakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}

// The lord cycle Ketu..Mercury repeats three times across the 27 mansions.
// It is also the Vimshottari dasha sequence.
var nakshatraLords = [9]Body{
	Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury,
}

// Nakshatra describes the lunar mansion occupied by a sidereal longitude.
type Nakshatra struct {
	Number int     `json:"number"` // 1..27
	Name   string  `json:"name"`
	Lord   Body    `json:"lord"`
	Pada   int     `json:"pada"`      // quarter within the mansion, 1..4
	Degree float64 `json:"degree_in"` // degrees traversed within the mansion
}

// NakshatraAt returns the nakshatra containing the given sidereal longitude.
// Boundaries are lower-inclusive, matching sign and house assignment.
func NakshatraAt(siderealLongitude float64) Nakshatra {
	lon := Norm360(siderealLongitude)
	idx := int(lon / NakshatraSpan)
	if idx > 26 { // guard against float rounding at 360-epsilon
		idx = 26
	}
	within := lon - float64(idx)*NakshatraSpan
	pada := int(within/(NakshatraSpan/4)) + 1
	if pada > 4 {
		pada = 4
	}
	return Nakshatra{
		Number: idx + 1,
		Name:   nakshatraNames[idx],
		Lord:   nakshatraLords[idx%9],
		Pada:   pada,
		Degree: within,
	}
}

// NakshatraBalance returns the nakshatra number (1..27) and the fraction of
// the mansion not yet traversed. The Vimshottari dasha balance at birth is
// this fraction of the mansion lord's full period.
func NakshatraBalance(moonLongitude float64) (number int, remaining float64) {
	lon := Norm360(moonLongitude)
	raw := lon / NakshatraSpan
	idx := int(raw)
	if idx > 26 {
		idx = 26
	}
	remaining = 1 - math.Mod(raw, 1)
	return idx + 1, remaining
}
