package astrotime

import (
	"errors"
	"math"
	"testing"
)

func TestNewMoment_Valid(t *testing.T) {
	m, err := NewMoment(Moment{
		Year: 1990, Month: 1, Day: 1,
		Latitude: 28.6139, Longitude: 77.2090,
	})
	if err != nil {
		t.Fatalf("NewMoment returned unexpected error: %v", err)
	}
	if m.Year != 1990 {
		t.Errorf("Year = %d, want 1990", m.Year)
	}
}

func TestNewMoment_Invalid(t *testing.T) {
	base := Moment{Year: 1990, Month: 1, Day: 1}

	tests := []struct {
		name   string
		mutate func(*Moment)
	}{
		{"month zero", func(m *Moment) { m.Month = 0 }},
		{"month thirteen", func(m *Moment) { m.Month = 13 }},
		{"april 31", func(m *Moment) { m.Month = 4; m.Day = 31 }},
		{"feb 29 non-leap", func(m *Moment) { m.Year = 1990; m.Month = 2; m.Day = 29 }},
		{"feb 29 gregorian century", func(m *Moment) { m.Year = 1900; m.Month = 2; m.Day = 29 }},
		{"hour 24", func(m *Moment) { m.Hour = 24 }},
		{"minute 60", func(m *Moment) { m.Minute = 60 }},
		{"second 60", func(m *Moment) { m.Second = 60 }},
		{"offset below band", func(m *Moment) { m.OffsetHours = -12.5 }},
		{"offset above band", func(m *Moment) { m.OffsetHours = 14.5 }},
		{"latitude 91", func(m *Moment) { m.Latitude = 91 }},
		{"longitude 181", func(m *Moment) { m.Longitude = 181 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := base
			tt.mutate(&m)
			if _, err := NewMoment(m); !errors.Is(err, ErrInvalidMoment) {
				t.Errorf("NewMoment = %v, want ErrInvalidMoment", err)
			}
		})
	}
}

func TestNewMoment_LeapYears(t *testing.T) {
	// 2000 is a Gregorian leap year; 1500 is a Julian leap year even though
	// the Gregorian rule would reject it.
	for _, year := range []int{2000, 1500, 1996} {
		if _, err := NewMoment(Moment{Year: year, Month: 2, Day: 29}); err != nil {
			t.Errorf("Feb 29 %d rejected: %v", year, err)
		}
	}
}

func TestJulianDay_KnownEpochs(t *testing.T) {
	tests := []struct {
		name              string
		year, month, day  int
		hours             float64
		want              float64
	}{
		{"J2000", 2000, 1, 1, 12, 2451545.0},
		{"1990 new year", 1990, 1, 1, 0, 2447892.5},
		{"gregorian reform start", 1582, 10, 15, 0, 2299160.5},
		{"last julian date", 1582, 10, 4, 0, 2299159.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JulianDay(tt.year, tt.month, tt.day, tt.hours)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("JulianDay = %.6f, want %.6f", got, tt.want)
			}
		})
	}
}

func TestJulianDay_ReformContiguity(t *testing.T) {
	// 1582-10-04 (Julian) is immediately followed by 1582-10-15 (Gregorian).
	before := JulianDay(1582, 10, 4, 0)
	after := JulianDay(1582, 10, 15, 0)
	if after-before != 1 {
		t.Errorf("reform gap = %.6f days, want exactly 1", after-before)
	}
}

func TestGMST_AtJ2000(t *testing.T) {
	got := GMST(J2000)
	want := 280.46061837
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("GMST(J2000) = %.8f, want %.8f", got, want)
	}
}

func TestLocalSiderealTime_Range(t *testing.T) {
	for _, lon := range []float64{-180, -77.5, 0, 77.209, 180} {
		for _, jd := range []float64{2447892.5, J2000, 2460000.25} {
			lst := LocalSiderealTime(jd, lon)
			if lst < 0 || lst >= 360 {
				t.Errorf("LST(%.2f, %.3f) = %.6f outside [0, 360)", jd, lon, lst)
			}
		}
	}
}

func TestResolve_OffsetShiftsJulianDay(t *testing.T) {
	utc, _ := NewMoment(Moment{Year: 1990, Month: 1, Day: 1})
	ist, _ := NewMoment(Moment{Year: 1990, Month: 1, Day: 1, Hour: 5, Minute: 30, OffsetHours: 5.5})

	a, b := Resolve(utc), Resolve(ist)
	if math.Abs(a.Day-b.Day) > 1e-9 {
		t.Errorf("same UT instant resolved to different JDs: %.9f vs %.9f", a.Day, b.Day)
	}
}
