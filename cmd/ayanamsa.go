package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgopan/graha/internal/astrotime"
	"github.com/rgopan/graha/internal/ayanamsa"
)

var ayanamsaCmd = &cobra.Command{
	Use:   "ayanamsa <date>",
	Short: "Compare ayanamsa values across all models at a date",
	Args:  cobra.ExactArgs(1),
	RunE:  runAyanamsa,
}

func init() {
	rootCmd.AddCommand(ayanamsaCmd)
}

func runAyanamsa(cmd *cobra.Command, args []string) error {
	parts := strings.Split(args[0], "-")
	if len(parts) != 3 {
		return fmt.Errorf("date %q: want YYYY-MM-DD", args[0])
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return fmt.Errorf("date %q: want YYYY-MM-DD", args[0])
	}

	jd := astrotime.JulianDay(year, month, day, 0)
	fmt.Printf("JD %.1f\n", jd)
	for _, model := range ayanamsa.Models() {
		v, err := ayanamsa.Value(model, jd)
		if err != nil {
			return err
		}
		fmt.Printf("%-15s %9.4f°\n", model, v)
	}
	return nil
}
