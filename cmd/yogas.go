package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var yogasCmd = &cobra.Command{
	Use:   "yogas",
	Short: "List the yoga patterns present in a birth chart",
	RunE:  runYogas,
}

func init() {
	addMomentFlags(yogasCmd)
	rootCmd.AddCommand(yogasCmd)
}

func runYogas(cmd *cobra.Command, args []string) error {
	c, err := computeFromFlags(cmd)
	if err != nil {
		return err
	}

	if len(c.Yogas) == 0 {
		fmt.Println("no yogas present")
		return nil
	}
	for _, y := range c.Yogas {
		fmt.Printf("%-18s %s", y.Name, y.Detail)
		if len(y.Bodies) > 0 {
			fmt.Printf("  [")
			for i, b := range y.Bodies {
				if i > 0 {
					fmt.Print(", ")
				}
				fmt.Print(b)
			}
			fmt.Print("]")
		}
		fmt.Println()
	}
	return nil
}
