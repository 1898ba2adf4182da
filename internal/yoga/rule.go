// Package yoga evaluates named combinatorial patterns (yogas and doshas)
// against an assembled chart. Every pattern is a declarative rule in a
// versioned catalog: a tagged variant dispatched by one evaluator, never a
// bespoke branch of code. Adding a yoga is a catalog edit.
package yoga

import (
	"errors"
	"fmt"

	"github.com/rgopan/graha/internal/chart"
)

// ErrUnknownYogaRule indicates a rule whose kind the evaluator does not
// recognize. Unknown rules fail loudly rather than being silently skipped:
// a catalog that names a rule expects it to run.
var ErrUnknownYogaRule = errors.New("unknown yoga rule")

// ErrBadCatalog indicates a catalog that failed structural validation.
var ErrBadCatalog = errors.New("invalid yoga catalog")

// Kind selects the predicate a rule evaluates. The set is closed per
// catalog version; future kinds bump the version.
type Kind string

const (
	// KindConjunction holds when every listed body shares one house and all
	// pairwise separations fit within the orb (an orb of zero requires only
	// co-presence in the house).
	KindConjunction Kind = "conjunction"

	// KindPlacement holds when the body occupies one of the listed houses,
	// optionally also requiring one of the listed dignities.
	KindPlacement Kind = "placement"

	// KindPairHouse holds when the first body sits in one of its houses
	// while the second body sits in one of its own.
	KindPairHouse Kind = "pair_house"

	// KindLordPlacement holds when the lord of a given house (the ruler of
	// the sign occupying it) sits in one of the listed houses.
	KindLordPlacement Kind = "lord_placement"

	// KindMutualKendra holds when the second body is in a kendra (1st, 4th,
	// 7th or 10th position) counted from the first body's house.
	KindMutualKendra Kind = "mutual_kendra"

	// KindIsolation holds when no body other than the ignored ones occupies
	// any of the offset houses counted from the anchor body. It expresses
	// dosha patterns like Kemadruma.
	KindIsolation Kind = "isolation"
)

// Rule is one declarative catalog entry. Which fields are meaningful
// depends on Kind; Validate enforces the per-kind requirements.
type Rule struct {
	Name string `toml:"name"`
	Kind Kind   `toml:"kind"`

	// Bodies names the participating bodies. Conjunction uses all of them;
	// placement, mutual_kendra and isolation use the first (and second).
	Bodies []string `toml:"bodies,omitempty"`

	// Houses constrains the first body (placement) or names the target
	// houses (lord_placement).
	Houses []int `toml:"houses,omitempty"`

	// OrbDegrees is the conjunction tightness; zero means same-house only.
	OrbDegrees float64 `toml:"orb,omitempty"`

	// Dignities optionally gates placement rules.
	Dignities []string `toml:"dignities,omitempty"`

	// OfHouse is the house whose lord a lord_placement rule tracks.
	OfHouse int `toml:"of_house,omitempty"`

	// SecondHouses constrains the second body of a pair_house rule.
	SecondHouses []int `toml:"second_houses,omitempty"`

	// Offsets are house counts from the anchor for isolation rules
	// (1-based: 2 means the next house).
	Offsets []int `toml:"offsets,omitempty"`

	// Ignore lists bodies an isolation rule disregards.
	Ignore []string `toml:"ignore,omitempty"`
}

// Catalog is a versioned closed set of rules.
type Catalog struct {
	Version string `toml:"version"`
	Rules   []Rule `toml:"rules"`
}

// Validate checks every rule's structural requirements. The error wraps
// ErrUnknownYogaRule for unrecognized kinds and ErrBadCatalog for
// everything else.
func (c Catalog) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("%w: missing version", ErrBadCatalog)
	}
	seen := make(map[string]bool, len(c.Rules))
	for _, r := range c.Rules {
		if r.Name == "" {
			return fmt.Errorf("%w: unnamed rule", ErrBadCatalog)
		}
		if seen[r.Name] {
			return fmt.Errorf("%w: duplicate rule %q", ErrBadCatalog, r.Name)
		}
		seen[r.Name] = true
		if err := r.validate(); err != nil {
			return fmt.Errorf("rule %q: %w", r.Name, err)
		}
	}
	return nil
}

func (r Rule) validate() error {
	for _, name := range append(append([]string{}, r.Bodies...), r.Ignore...) {
		if _, err := chart.ParseBody(name); err != nil {
			return fmt.Errorf("%w: %v", ErrBadCatalog, err)
		}
	}
	for _, h := range append(append([]int{}, r.Houses...), r.SecondHouses...) {
		if h < 1 || h > 12 {
			return fmt.Errorf("%w: house %d outside 1..12", ErrBadCatalog, h)
		}
	}

	switch r.Kind {
	case KindConjunction:
		if len(r.Bodies) < 2 {
			return fmt.Errorf("%w: conjunction needs at least two bodies", ErrBadCatalog)
		}
	case KindPlacement:
		if len(r.Bodies) != 1 || len(r.Houses) == 0 {
			return fmt.Errorf("%w: placement needs one body and target houses", ErrBadCatalog)
		}
	case KindPairHouse:
		if len(r.Bodies) != 2 || len(r.Houses) == 0 || len(r.SecondHouses) == 0 {
			return fmt.Errorf("%w: pair_house needs two bodies and houses for each", ErrBadCatalog)
		}
	case KindLordPlacement:
		if r.OfHouse < 1 || r.OfHouse > 12 || len(r.Houses) == 0 {
			return fmt.Errorf("%w: lord_placement needs of_house and target houses", ErrBadCatalog)
		}
	case KindMutualKendra:
		if len(r.Bodies) != 2 {
			return fmt.Errorf("%w: mutual_kendra needs exactly two bodies", ErrBadCatalog)
		}
	case KindIsolation:
		if len(r.Bodies) != 1 || len(r.Offsets) == 0 {
			return fmt.Errorf("%w: isolation needs one anchor body and offsets", ErrBadCatalog)
		}
		for _, o := range r.Offsets {
			if o < 1 || o > 12 {
				return fmt.Errorf("%w: offset %d outside 1..12", ErrBadCatalog, o)
			}
		}
	default:
		return fmt.Errorf("%w: kind %q", ErrUnknownYogaRule, string(r.Kind))
	}
	return nil
}
