package varga

import (
	"errors"
	"testing"

	"github.com/rgopan/graha/internal/chart"
)

func TestSignAt_D1Identity(t *testing.T) {
	for lon := 0.0; lon < 360; lon += 17.3 {
		got, err := SignAt(1, lon)
		if err != nil {
			t.Fatal(err)
		}
		if got != chart.SignOf(lon) {
			t.Errorf("D1(%.1f) = %s, want %s", lon, got, chart.SignOf(lon))
		}
	}
}

func TestSignAt_Navamsa(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
		want chart.Sign
	}{
		// Fire sign: counts from Aries.
		{"aries first navamsa", 1.0, chart.Aries},
		{"aries fourth navamsa", 10.5, chart.Cancer},
		{"leo fourth navamsa", 130.0, chart.Cancer},
		// Earth sign: counts from Cancer.
		{"taurus first navamsa", 31.0, chart.Cancer},
		// Air sign: counts from Libra.
		{"gemini first navamsa", 61.0, chart.Libra},
		// Water sign: counts from Capricorn.
		{"cancer first navamsa", 91.0, chart.Capricorn},
		{"pisces last navamsa", 359.0, chart.Virgo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SignAt(9, tt.lon)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("D9(%.2f) = %s, want %s", tt.lon, got, tt.want)
			}
		})
	}
}

func TestSignAt_Dwadasamsa(t *testing.T) {
	// D12 counts from the occupied sign itself in 2.5-degree arcs.
	tests := []struct {
		lon  float64
		want chart.Sign
	}{
		{0.0, chart.Aries},
		{2.5, chart.Taurus},
		{35.0, chart.Gemini},   // Taurus 5 deg, third arc
		{29.999, chart.Pisces}, // Aries last arc
	}
	for _, tt := range tests {
		got, err := SignAt(12, tt.lon)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("D12(%.3f) = %s, want %s", tt.lon, got, tt.want)
		}
	}
}

func TestSignAt_Trimsamsa(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
		want chart.Sign
	}{
		{"odd sign first arc", 3.0, chart.Aries},          // Aries 0-5: Mars
		{"odd sign second arc", 7.0, chart.Aquarius},      // Aries 5-10: Saturn
		{"odd sign third arc", 15.0, chart.Sagittarius},   // Aries 10-18: Jupiter
		{"odd sign fourth arc", 20.0, chart.Gemini},       // Aries 18-25: Mercury
		{"odd sign fifth arc", 27.0, chart.Libra},         // Aries 25-30: Venus
		{"even sign first arc", 33.0, chart.Taurus},       // Taurus 0-5: Venus
		{"even sign last arc", 58.0, chart.Scorpio},       // Taurus 25-30: Mars
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SignAt(30, tt.lon)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("D30(%.1f) = %s, want %s", tt.lon, got, tt.want)
			}
		})
	}
}

func TestSignAt_Bounds(t *testing.T) {
	for _, d := range []int{0, -1, 61} {
		if _, err := SignAt(d, 10); !errors.Is(err, ErrBadDivision) {
			t.Errorf("SignAt(D%d) = %v, want ErrBadDivision", d, err)
		}
	}
}

func TestCompute(t *testing.T) {
	positions := []chart.SiderealPosition{
		{Body: chart.Sun, Longitude: 130},
		{Body: chart.Moon, Longitude: 31},
	}
	dc, err := Compute(9, positions)
	if err != nil {
		t.Fatal(err)
	}
	if dc.Division != "D9" {
		t.Errorf("division = %q, want D9", dc.Division)
	}
	if dc.Signs[chart.Sun] != chart.Cancer || dc.Signs[chart.Moon] != chart.Cancer {
		t.Errorf("signs = %v", dc.Signs)
	}
}
