package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgopan/graha/internal/chart"
)

var dashaCmd = &cobra.Command{
	Use:   "dasha",
	Short: "Print the Vimshottari dasha timeline for a birth chart",
	RunE:  runDasha,
}

func init() {
	addMomentFlags(dashaCmd)
	dashaCmd.Flags().Bool("sub", false, "include first-level antardashas")
	rootCmd.AddCommand(dashaCmd)
}

func runDasha(cmd *cobra.Command, args []string) error {
	c, err := computeFromFlags(cmd)
	if err != nil {
		return err
	}
	withSub, _ := cmd.Flags().GetBool("sub")

	for _, p := range c.Dashas {
		printPeriod(p, 0)
		if withSub {
			for _, s := range p.Sub {
				printPeriod(s, 1)
			}
		}
	}
	return nil
}

func printPeriod(p chart.DashaPeriod, depth int) {
	indent := ""
	if depth > 0 {
		indent = "    "
	}
	fmt.Printf("%s%-8s %s .. %s\n", indent, p.Lord,
		p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
}
