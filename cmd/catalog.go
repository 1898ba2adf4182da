package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgopan/graha/internal/aspects"
	"github.com/rgopan/graha/internal/yoga"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate yoga catalogs and aspect tables",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a yoga catalog or aspect table TOML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogValidate,
}

func init() {
	catalogValidateCmd.Flags().Bool("aspects", false, "validate as an aspect table instead of a yoga catalog")
	catalogCmd.AddCommand(catalogValidateCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	if asAspects, _ := cmd.Flags().GetBool("aspects"); asAspects {
		table, err := aspects.LoadTable(path)
		if err != nil {
			return err
		}
		fmt.Printf("aspect table %s: version %s, %d universal aspects, %d special grants\n",
			path, table.Version, len(table.Universal), len(table.Special))
		return nil
	}

	catalog, err := yoga.LoadCatalog(path)
	if err != nil {
		return err
	}
	fmt.Printf("yoga catalog %s: version %s, %d rules\n", path, catalog.Version, len(catalog.Rules))
	return nil
}
