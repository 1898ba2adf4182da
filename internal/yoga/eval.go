package yoga

import (
	"fmt"

	"github.com/rgopan/graha/internal/aspects"
	"github.com/rgopan/graha/internal/chart"
)

// Evaluate runs the full catalog against an assembled chart and returns the
// rules that hold, each with its evidentiary bodies and houses. Every rule
// is evaluated unconditionally; rules are pure and order-independent, so
// the result depends only on the chart and the catalog. An empty result is
// a valid outcome, not an error.
func Evaluate(c *chart.BirthChart, catalog Catalog) ([]chart.YogaResult, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	var out []chart.YogaResult
	for _, rule := range catalog.Rules {
		res, err := evalRule(c, rule)
		if err != nil {
			return nil, fmt.Errorf("yoga %q: %w", rule.Name, err)
		}
		if res.Present {
			out = append(out, res)
		}
	}
	return out, nil
}

func evalRule(c *chart.BirthChart, r Rule) (chart.YogaResult, error) {
	switch r.Kind {
	case KindConjunction:
		return evalConjunction(c, r), nil
	case KindPlacement:
		return evalPlacement(c, r), nil
	case KindPairHouse:
		return evalPairHouse(c, r), nil
	case KindLordPlacement:
		return evalLordPlacement(c, r), nil
	case KindMutualKendra:
		return evalMutualKendra(c, r), nil
	case KindIsolation:
		return evalIsolation(c, r), nil
	}
	return chart.YogaResult{}, fmt.Errorf("%w: kind %q", ErrUnknownYogaRule, string(r.Kind))
}

func evalConjunction(c *chart.BirthChart, r Rule) chart.YogaResult {
	bodies := mustBodies(r.Bodies)
	house, ok := c.Houses[bodies[0]]
	if !ok {
		return chart.YogaResult{Name: r.Name}
	}
	for _, b := range bodies[1:] {
		if c.Houses[b] != house {
			return chart.YogaResult{Name: r.Name}
		}
	}
	if r.OrbDegrees > 0 {
		for i := 0; i < len(bodies); i++ {
			for j := i + 1; j < len(bodies); j++ {
				pi, iok := c.Position(bodies[i])
				pj, jok := c.Position(bodies[j])
				if !iok || !jok || aspects.Separation(pi.Longitude, pj.Longitude) > r.OrbDegrees {
					return chart.YogaResult{Name: r.Name}
				}
			}
		}
	}
	return chart.YogaResult{
		Name: r.Name, Present: true,
		Bodies: bodies, Houses: []int{house},
		Detail: fmt.Sprintf("conjunct in house %d", house),
	}
}

func evalPlacement(c *chart.BirthChart, r Rule) chart.YogaResult {
	body := mustBodies(r.Bodies)[0]
	house, ok := c.Houses[body]
	if !ok || !containsInt(r.Houses, house) {
		return chart.YogaResult{Name: r.Name}
	}
	if len(r.Dignities) > 0 {
		pos, ok := c.Position(body)
		if !ok || !containsStr(r.Dignities, string(pos.Dignity)) {
			return chart.YogaResult{Name: r.Name}
		}
	}
	return chart.YogaResult{
		Name: r.Name, Present: true,
		Bodies: []chart.Body{body}, Houses: []int{house},
		Detail: fmt.Sprintf("%s in house %d", body, house),
	}
}

func evalPairHouse(c *chart.BirthChart, r Rule) chart.YogaResult {
	bodies := mustBodies(r.Bodies)
	h1, ok1 := c.Houses[bodies[0]]
	h2, ok2 := c.Houses[bodies[1]]
	if !ok1 || !ok2 || !containsInt(r.Houses, h1) || !containsInt(r.SecondHouses, h2) {
		return chart.YogaResult{Name: r.Name}
	}
	return chart.YogaResult{
		Name: r.Name, Present: true,
		Bodies: bodies, Houses: []int{h1, h2},
		Detail: fmt.Sprintf("%s in house %d while %s in house %d", bodies[0], h1, bodies[1], h2),
	}
}

func evalLordPlacement(c *chart.BirthChart, r Rule) chart.YogaResult {
	lord := houseLord(c, r.OfHouse)
	house, ok := c.Houses[lord]
	if !ok || !containsInt(r.Houses, house) {
		return chart.YogaResult{Name: r.Name}
	}
	return chart.YogaResult{
		Name: r.Name, Present: true,
		Bodies: []chart.Body{lord}, Houses: []int{r.OfHouse, house},
		Detail: fmt.Sprintf("lord of house %d (%s) in house %d", r.OfHouse, lord, house),
	}
}

func evalMutualKendra(c *chart.BirthChart, r Rule) chart.YogaResult {
	bodies := mustBodies(r.Bodies)
	h1, ok1 := c.Houses[bodies[0]]
	h2, ok2 := c.Houses[bodies[1]]
	if !ok1 || !ok2 {
		return chart.YogaResult{Name: r.Name}
	}
	count := houseCount(h1, h2)
	if count != 1 && count != 4 && count != 7 && count != 10 {
		return chart.YogaResult{Name: r.Name}
	}
	return chart.YogaResult{
		Name: r.Name, Present: true,
		Bodies: bodies, Houses: []int{h1, h2},
		Detail: fmt.Sprintf("%s is %d houses from %s", bodies[1], count, bodies[0]),
	}
}

func evalIsolation(c *chart.BirthChart, r Rule) chart.YogaResult {
	anchor := mustBodies(r.Bodies)[0]
	anchorHouse, ok := c.Houses[anchor]
	if !ok {
		return chart.YogaResult{Name: r.Name}
	}
	ignored := make(map[chart.Body]bool, len(r.Ignore)+1)
	ignored[anchor] = true
	for _, b := range mustBodies(r.Ignore) {
		ignored[b] = true
	}

	targets := make(map[int]bool, len(r.Offsets))
	for _, off := range r.Offsets {
		targets[((anchorHouse-1)+(off-1))%12+1] = true
	}

	for body, house := range c.Houses {
		if !ignored[body] && targets[house] {
			return chart.YogaResult{Name: r.Name}
		}
	}
	return chart.YogaResult{
		Name: r.Name, Present: true,
		Bodies: []chart.Body{anchor}, Houses: []int{anchorHouse},
		Detail: fmt.Sprintf("%s unaccompanied from house %d", anchor, anchorHouse),
	}
}

// houseLord returns the ruler of the sign occupying a house, read from the
// house's cusp longitude so the rule works under any supported system.
func houseLord(c *chart.BirthChart, house int) chart.Body {
	return chart.SignOf(c.Cusps[house-1].Longitude).Lord()
}

// houseCount returns the 1-based count from house a to house b in zodiacal
// order; a house counted from itself is 1.
func houseCount(a, b int) int {
	return (b-a+12)%12 + 1
}

// mustBodies parses body names already vetted by Catalog.Validate.
func mustBodies(names []string) []chart.Body {
	out := make([]chart.Body, len(names))
	for i, n := range names {
		b, _ := chart.ParseBody(n)
		out[i] = b
	}
	return out
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func containsStr(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
