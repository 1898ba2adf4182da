package ephem

import (
	"fmt"
	"os"
	"sort"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/rgopan/graha/internal/chart"
)

// tableFile is the TOML shape of an ephemeris table: a set of samples per
// body, each a (julian_day, longitude, latitude, distance, speed) row.
type tableFile struct {
	Ephemeris struct {
		Name string `toml:"name"`
	} `toml:"ephemeris"`
	Samples map[string][]sampleRow `toml:"samples"`
}

type sampleRow struct {
	JulianDay float64 `toml:"jd"`
	Longitude float64 `toml:"longitude"`
	Latitude  float64 `toml:"latitude"`
	Distance  float64 `toml:"distance"`
	Speed     float64 `toml:"speed"`
}

// Table is a provider backed by time-indexed position samples, linearly
// interpolated between the bracketing rows. Requests outside a body's sample
// range yield ErrNoData: interpolation never extrapolates, since a silently
// wrong position would corrupt every downstream layer.
type Table struct {
	name    string
	samples map[chart.Body][]sampleRow // sorted by JulianDay
}

// LoadTable reads an ephemeris table from a TOML file.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ephem: reading table: %w", err)
	}
	var file tableFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("ephem: parsing table %s: %w", path, err)
	}

	t := &Table{
		name:    file.Ephemeris.Name,
		samples: make(map[chart.Body][]sampleRow, len(file.Samples)),
	}
	for name, rows := range file.Samples {
		body, err := chart.ParseBody(name)
		if err != nil {
			return nil, fmt.Errorf("ephem: table %s: %w", path, err)
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("ephem: table %s: body %s has no samples", path, name)
		}
		sorted := append([]sampleRow(nil), rows...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].JulianDay < sorted[j].JulianDay })
		t.samples[body] = sorted
	}
	return t, nil
}

// Name returns the table's self-declared name, for logging.
func (t *Table) Name() string { return t.name }

// Position implements Provider by interpolating between the two samples
// bracketing jdUT. Longitude interpolation takes the short way around the
// 0/360 seam.
func (t *Table) Position(jdUT float64, body chart.Body) (Position, error) {
	rows, ok := t.samples[body]
	if !ok {
		return Position{}, fmt.Errorf("%w: no samples for %s", ErrNoData, body)
	}
	if jdUT < rows[0].JulianDay || jdUT > rows[len(rows)-1].JulianDay {
		return Position{}, fmt.Errorf("%w: JD %.6f outside table range for %s", ErrNoData, jdUT, body)
	}

	i := sort.Search(len(rows), func(i int) bool { return rows[i].JulianDay >= jdUT })
	if rows[i].JulianDay == jdUT || i == 0 {
		r := rows[i]
		return Position{Longitude: r.Longitude, Latitude: r.Latitude, Distance: r.Distance, Speed: r.Speed}, nil
	}

	lo, hi := rows[i-1], rows[i]
	f := (jdUT - lo.JulianDay) / (hi.JulianDay - lo.JulianDay)

	dLon := chart.Norm360(hi.Longitude - lo.Longitude)
	if dLon > 180 {
		dLon -= 360
	}
	return Position{
		Longitude: chart.Norm360(lo.Longitude + f*dLon),
		Latitude:  lo.Latitude + f*(hi.Latitude-lo.Latitude),
		Distance:  lo.Distance + f*(hi.Distance-lo.Distance),
		Speed:     lo.Speed + f*(hi.Speed-lo.Speed),
	}, nil
}
