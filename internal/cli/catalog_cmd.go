package cli

import (
	"fmt"

	"github.com/alexanderramin/housewright/internal/cli/formatter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newCatalogCmd(app *App) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the classification rules and house templates in use",
		Long: `Show the classification rules and house templates in use.

With --yaml the tables are printed in the format HOUSEWRIGHT_CATALOG
accepts, as a starting point for a custom catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if asYAML {
				data, err := yaml.Marshal(app.Catalog)
				if err != nil {
					return fmt.Errorf("encoding catalog: %w", err)
				}
				_, err = out.Write(data)
				return err
			}
			fmt.Fprint(out, formatter.FormatCatalog(app.Catalog))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the tables as YAML")
	return cmd
}
