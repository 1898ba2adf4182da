package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rgopan/graha/internal/chart"
	"github.com/rgopan/graha/internal/config"
	"github.com/rgopan/graha/internal/engine"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Compute a full birth chart",
	RunE:  runChart,
}

func init() {
	addMomentFlags(chartCmd)
	chartCmd.Flags().Bool("json", false, "emit the chart aggregate as JSON")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	c, err := computeFromFlags(cmd)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	}
	printChart(c)
	return nil
}

// computeFromFlags runs the engine for the moment described by the command's
// flags. Invariant-class failures are logged with full input context before
// being surfaced; they indicate a defect, not bad input.
func computeFromFlags(cmd *cobra.Command) (*chart.BirthChart, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	m, err := momentFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	ecfg, err := engineConfig(cfg)
	if err != nil {
		return nil, err
	}
	prov, err := provider(cfg)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("year", m.Year).Int("month", m.Month).Int("day", m.Day).
		Float64("lat", m.Latitude).Float64("lon", m.Longitude).
		Str("ayanamsa", string(ecfg.Ayanamsa)).
		Msg("computing chart")

	c, err := engine.Compute(m, prov, ecfg)
	if err != nil {
		if isDefect(err) {
			log.Error().Err(err).Interface("moment", m).Msg("chart invariant violated")
		}
		return nil, err
	}
	return c, nil
}

func printChart(c *chart.BirthChart) {
	fmt.Printf("Ascendant  %10.4f°  (%s)   ayanamsa %s %.4f°\n",
		c.Ascendant, chart.SignOf(c.Ascendant), c.Ayanamsa, c.AyanamsaValue)
	fmt.Println()

	for _, p := range c.Positions {
		retro := " "
		if p.Retrograde {
			retro = "R"
		}
		fmt.Printf("%-8s %s %10.4f°  %-11s house %2d  %-12s %s (pada %d)\n",
			p.Body, retro, p.Longitude, p.Sign, c.Houses[p.Body],
			p.Dignity, p.Nakshatra.Name, p.Nakshatra.Pada)
	}

	if len(c.Aspects) > 0 {
		fmt.Println()
		for _, a := range c.Aspects {
			kind := ""
			if a.Special {
				kind = " (special)"
			}
			fmt.Printf("%-8s - %-8s %-12s %5.1f°  orb %5.2f°  %s%s\n",
				a.A, a.B, a.Name, a.Angle, a.Orb, a.Strength, kind)
		}
	}

	if len(c.Yogas) > 0 {
		fmt.Println()
		for _, y := range c.Yogas {
			fmt.Printf("yoga %-18s %s\n", y.Name, y.Detail)
		}
	}

	for _, dc := range c.Vargas {
		fmt.Printf("\n%s:", dc.Division)
		for _, p := range c.Positions {
			fmt.Printf("  %s %s", p.Body, dc.Signs[p.Body])
		}
		fmt.Println()
	}
}
