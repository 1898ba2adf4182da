package chart

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/rgopan/graha/internal/astrotime"
)

func TestNorm360(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0}, {360, 0}, {-30, 330}, {725, 5}, {359.999, 359.999},
	}
	for _, tt := range tests {
		if got := Norm360(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Norm360(%.3f) = %.3f, want %.3f", tt.in, got, tt.want)
		}
	}
}

func TestSignOf_Boundaries(t *testing.T) {
	// Sign boundaries are lower-inclusive: exactly 30 degrees is Taurus.
	tests := []struct {
		lon  float64
		want Sign
	}{
		{0, Aries}, {29.999999, Aries}, {30, Taurus}, {90, Cancer},
		{359.999999, Pisces}, {360, Aries},
	}
	for _, tt := range tests {
		if got := SignOf(tt.lon); got != tt.want {
			t.Errorf("SignOf(%.6f) = %s, want %s", tt.lon, got, tt.want)
		}
	}
}

func TestSignLords(t *testing.T) {
	tests := []struct {
		sign Sign
		want Body
	}{
		{Aries, Mars}, {Cancer, Moon}, {Leo, Sun}, {Virgo, Mercury},
		{Sagittarius, Jupiter}, {Aquarius, Saturn},
	}
	for _, tt := range tests {
		if got := tt.sign.Lord(); got != tt.want {
			t.Errorf("%s.Lord() = %s, want %s", tt.sign, got, tt.want)
		}
	}
}

func TestParseBody(t *testing.T) {
	for _, b := range Bodies(true) {
		got, err := ParseBody(b.String())
		if err != nil || got != b {
			t.Errorf("ParseBody(%s) = %v, %v", b, got, err)
		}
	}
	if _, err := ParseBody("Pluto"); err == nil {
		t.Error("ParseBody(Pluto) accepted a body outside the closed set")
	}
}

func TestBodies(t *testing.T) {
	if n := len(Bodies(true)); n != 9 {
		t.Errorf("with nodes: %d bodies, want 9", n)
	}
	if n := len(Bodies(false)); n != 7 {
		t.Errorf("without nodes: %d bodies, want 7", n)
	}
}

func TestNakshatraAt(t *testing.T) {
	tests := []struct {
		lon      float64
		wantName string
		wantLord Body
		wantPada int
	}{
		{0, "Ashwini", Ketu, 1},
		{13.3334, "Bharani", Venus, 1},
		{3.34, "Ashwini", Ketu, 2},
		{133.34, "Magha", Ketu, 1},      // lord cycle repeats at 10th mansion
		{359.99, "Revati", Mercury, 4},
	}
	for _, tt := range tests {
		n := NakshatraAt(tt.lon)
		if n.Name != tt.wantName || n.Lord != tt.wantLord || n.Pada != tt.wantPada {
			t.Errorf("NakshatraAt(%.4f) = %s/%s pada %d, want %s/%s pada %d",
				tt.lon, n.Name, n.Lord, n.Pada, tt.wantName, tt.wantLord, tt.wantPada)
		}
	}
}

func TestNakshatraBalance(t *testing.T) {
	num, rem := NakshatraBalance(0)
	if num != 1 || math.Abs(rem-1) > 1e-9 {
		t.Errorf("balance at 0 = (%d, %.6f), want (1, 1.0)", num, rem)
	}

	// Halfway through Bharani.
	num, rem = NakshatraBalance(20)
	if num != 2 || math.Abs(rem-0.5) > 1e-9 {
		t.Errorf("balance at 20 = (%d, %.6f), want (2, 0.5)", num, rem)
	}
}

func TestBirthChart_JSONRoundTrip(t *testing.T) {
	orig := BirthChart{
		Moment:        astrotime.Moment{Year: 1990, Month: 1, Day: 1, Latitude: 28.6139, Longitude: 77.209},
		Julian:        astrotime.Julian{Day: 2447892.5, SiderealTime: 123.456},
		Ayanamsa:      "lahiri",
		AyanamsaValue: 23.7104,
		HouseSystem:   "whole_sign",
		Ascendant:     171.5,
		Cusps:         []HouseCusp{{House: 1, Longitude: 150}},
		Positions: []SiderealPosition{{
			Body: Sun, Longitude: 256.2896, Sign: Sagittarius,
			Nakshatra: NakshatraAt(256.2896), Dignity: Friendly,
		}},
		Houses:  HousePlacement{Sun: 4},
		Aspects: []Aspect{{A: Sun, B: Moon, Name: "trine", Angle: 120, Orb: 1.2, Strength: Close}},
		Yogas:   []YogaResult{{Name: "gajakesari", Present: true, Bodies: []Body{Moon, Jupiter}, Houses: []int{4, 10}}},
		Vargas:  []DivisionalChart{{Division: "D9", Signs: map[Body]Sign{Sun: Leo}}},
		Dashas: []DashaPeriod{{
			Lord:  Ketu,
			Start: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(1997, 1, 1, 0, 0, 0, 0, time.UTC),
		}},
	}

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got BirthChart
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(orig, got) {
		t.Errorf("round trip diverged:\n got %+v\nwant %+v", got, orig)
	}
}
