// Package astrotime normalizes civil birth data into the astronomical time
// scales the calculation pipeline runs on: Julian Day (UT) and local sidereal
// time. It is the first stage of the pipeline and the only one that sees
// civil calendar data.
package astrotime

import (
	"errors"
	"fmt"
)

// ErrInvalidMoment indicates a birth moment with out-of-range calendar or
// geographic components. The computation is aborted before any ephemeris
// lookup.
var ErrInvalidMoment = errors.New("invalid birth moment")

// MomentError wraps ErrInvalidMoment with the offending field and value.
type MomentError struct {
	Field string
	Value any
}

func (e *MomentError) Error() string {
	return fmt.Sprintf("%v: %s = %v", ErrInvalidMoment, e.Field, e.Value)
}

func (e *MomentError) Unwrap() error { return ErrInvalidMoment }

// Moment is a civil birth moment: local date and time, the UTC offset in
// effect, and the geodetic location. Construct through NewMoment so the
// invariants hold; a validated Moment is never mutated.
type Moment struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"`
	Day    int     `json:"day"`
	Hour   int     `json:"hour"`
	Minute int     `json:"minute"`
	Second float64 `json:"second"`

	// OffsetHours is the UTC offset of the local clock, in [-12, +14].
	OffsetHours float64 `json:"offset_hours"`

	Latitude  float64 `json:"latitude"`  // geodetic degrees, north positive
	Longitude float64 `json:"longitude"` // degrees, east positive
	Altitude  float64 `json:"altitude"`  // meters above sea level
}

// NewMoment validates every component and returns an immutable Moment.
// Calendar validation uses the proleptic rule applied by JulianDay: Julian
// calendar before 1582-10-15, Gregorian after.
func NewMoment(m Moment) (Moment, error) {
	if m.Month < 1 || m.Month > 12 {
		return Moment{}, &MomentError{Field: "month", Value: m.Month}
	}
	if m.Day < 1 || m.Day > daysInMonth(m.Year, m.Month) {
		return Moment{}, &MomentError{Field: "day", Value: m.Day}
	}
	if m.Hour < 0 || m.Hour > 23 {
		return Moment{}, &MomentError{Field: "hour", Value: m.Hour}
	}
	if m.Minute < 0 || m.Minute > 59 {
		return Moment{}, &MomentError{Field: "minute", Value: m.Minute}
	}
	if m.Second < 0 || m.Second >= 60 {
		return Moment{}, &MomentError{Field: "second", Value: m.Second}
	}
	if m.OffsetHours < -12 || m.OffsetHours > 14 {
		return Moment{}, &MomentError{Field: "offset_hours", Value: m.OffsetHours}
	}
	if m.Latitude < -90 || m.Latitude > 90 {
		return Moment{}, &MomentError{Field: "latitude", Value: m.Latitude}
	}
	if m.Longitude < -180 || m.Longitude > 180 {
		return Moment{}, &MomentError{Field: "longitude", Value: m.Longitude}
	}
	return m, nil
}

// daysInMonth returns the month length under the calendar in effect for the
// given year. Leap years follow the Julian rule before the 1582 reform and
// the Gregorian rule after; the distinction matters for century years.
func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	}
	if isLeap(year) {
		return 29
	}
	return 28
}

func isLeap(year int) bool {
	if year < 1582 {
		return year%4 == 0
	}
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
