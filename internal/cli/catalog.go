package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/plantcare/internal/db"
	"github.com/terraincognita07/plantcare/internal/services"
)

func newCatalogCommand(options *rootOptions) *cobra.Command {
	catalog := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the plant catalog",
	}

	catalog.AddCommand(&cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Create or update categories and products from a YAML catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := options.loadConfig()
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read catalog: %w", err)
			}
			document, err := services.ParseCatalogDocument(raw)
			if err != nil {
				return err
			}

			database, closeDatabase, err := openDatabase(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer closeDatabase()

			catalogService := services.NewCatalogService(db.NewProductRepository(database))
			result, err := catalogService.ImportCatalog(cmd.Context(), document)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Catalog imported: %d categories, %d products created, %d updated\n",
				result.Categories, result.ProductsCreated, result.ProductsUpdated)
			return nil
		},
	})
	return catalog
}
