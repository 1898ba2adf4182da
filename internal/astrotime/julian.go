package astrotime

import "math"

// J2000 is the Julian Day of the J2000.0 epoch, 2000-01-01 12:00 TT.
const J2000 = 2451545.0

// JulianCentury is the number of days in a Julian century.
const JulianCentury = 36525.0

// Julian is the normalized form of a Moment: Julian Day in Universal Time
// plus the local sidereal time at the birth location. It is recomputed from
// a Moment, never mutated.
type Julian struct {
	Day          float64 `json:"julian_day"`    // JD, UT
	SiderealTime float64 `json:"sidereal_time"` // local sidereal time, degrees [0, 360)
}

// Resolve converts a validated Moment into its Julian form: local civil time
// minus the UTC offset gives UT, UT gives the Julian Day, and the Julian Day
// plus east longitude gives local sidereal time.
func Resolve(m Moment) Julian {
	ut := float64(m.Hour) + float64(m.Minute)/60 + m.Second/3600 - m.OffsetHours
	jd := JulianDay(m.Year, m.Month, m.Day, ut)
	return Julian{
		Day:          jd,
		SiderealTime: LocalSiderealTime(jd, m.Longitude),
	}
}

// JulianDay converts a calendar date and fractional UT hour to a Julian Day.
// Dates before 1582-10-15 are interpreted in the Julian calendar, later
// dates in the Gregorian calendar (the proleptic reform rule).
func JulianDay(year, month, day int, utHours float64) float64 {
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian century correction applies from the reform date onward.
	b := 0
	if year > 1582 || (year == 1582 && (month > 10 || (month == 10 && day >= 15))) {
		a := y / 100
		b = 2 - a + a/4
	}

	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + float64(b) - 1524.5
	return jd + utHours/24
}

// GMST returns the Greenwich Mean Sidereal Time in degrees [0, 360) at the
// given Julian Day (UT), using the IAU 1982 polynomial in Julian centuries
// since J2000.0.
func GMST(jd float64) float64 {
	t := (jd - J2000) / JulianCentury
	gmst := 280.46061837 +
		360.98564736629*(jd-J2000) +
		0.000387933*t*t -
		t*t*t/38710000
	return norm360(gmst)
}

// LocalSiderealTime returns the sidereal time in degrees at the given east
// longitude. One degree of longitude shifts sidereal time by one degree.
func LocalSiderealTime(jd, eastLongitude float64) float64 {
	return norm360(GMST(jd) + eastLongitude)
}

func norm360(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}
