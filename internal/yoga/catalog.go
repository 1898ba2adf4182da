package yoga

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/rgopan/graha/internal/chart"
)

// Builtin returns the default catalog: the classical yogas the original
// corpus recognizes, expressed as declarative rules.
func Builtin() Catalog {
	kendras := []int{1, 4, 7, 10}
	strong := []string{string(chart.Exalted), string(chart.Moolatrikona), string(chart.OwnSign)}

	return Catalog{
		Version: "1",
		Rules: []Rule{
			// Jupiter in a kendra from the Moon.
			{Name: "gajakesari", Kind: KindMutualKendra,
				Bodies: []string{"Moon", "Jupiter"}},

			// Mercury conjunct the Sun.
			{Name: "budha_aditya", Kind: KindConjunction,
				Bodies: []string{"Sun", "Mercury"}},

			// Moon conjunct Mars.
			{Name: "chandra_mangala", Kind: KindConjunction,
				Bodies: []string{"Moon", "Mars"}},

			// Pancha Mahapurusha: each of the five tara grahas in a kendra
			// while strongly dignified.
			{Name: "ruchaka", Kind: KindPlacement,
				Bodies: []string{"Mars"}, Houses: kendras, Dignities: strong},
			{Name: "bhadra", Kind: KindPlacement,
				Bodies: []string{"Mercury"}, Houses: kendras, Dignities: strong},
			{Name: "hamsa", Kind: KindPlacement,
				Bodies: []string{"Jupiter"}, Houses: kendras, Dignities: strong},
			{Name: "malavya", Kind: KindPlacement,
				Bodies: []string{"Venus"}, Houses: kendras, Dignities: strong},
			{Name: "sasa", Kind: KindPlacement,
				Bodies: []string{"Saturn"}, Houses: kendras, Dignities: strong},

			// Raj yoga: lords of the trine houses placed in kendras.
			{Name: "raj_lagna_lord", Kind: KindLordPlacement,
				OfHouse: 1, Houses: kendras},
			{Name: "raj_5th_lord", Kind: KindLordPlacement,
				OfHouse: 5, Houses: kendras},
			{Name: "raj_9th_lord", Kind: KindLordPlacement,
				OfHouse: 9, Houses: kendras},

			// Dhana yoga: wealth-house lords in beneficial houses.
			{Name: "dhana_2nd_lord", Kind: KindLordPlacement,
				OfHouse: 2, Houses: []int{1, 2, 4, 5, 9, 11}},
			{Name: "dhana_11th_lord", Kind: KindLordPlacement,
				OfHouse: 11, Houses: []int{1, 2, 4, 5, 9, 11}},

			// Kemadruma dosha: the Moon with no companion in its own house
			// or the houses either side, the Sun and nodes disregarded.
			{Name: "kemadruma", Kind: KindIsolation,
				Bodies:  []string{"Moon"},
				Offsets: []int{1, 2, 12},
				Ignore:  []string{"Sun", "Rahu", "Ketu"}},
		},
	}
}

// LoadCatalog reads and validates a yoga catalog from a TOML file.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("yoga: reading catalog: %w", err)
	}
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("yoga: parsing %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("yoga: %s: %w", path, err)
	}
	return c, nil
}
