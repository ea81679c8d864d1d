package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/plantcare/internal/db"
)

func newMigrateCommand(options *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply embedded database migrations and print their status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := options.loadConfig()
			if err != nil {
				return err
			}

			database, closeDatabase, err := openDatabase(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer closeDatabase()

			statuses, err := db.ListMigrationStatus(database)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, status := range statuses {
				state := "pending"
				if status.Applied {
					state = "applied"
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", status.Version, state, status.Name)
			}
			return nil
		},
	}
}
