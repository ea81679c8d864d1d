package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/plantcare/internal/config"
)

type rootOptions struct {
	configPath string
}

func (options *rootOptions) loadConfig() (*config.Config, error) {
	return config.Load(options.configPath)
}

func NewRootCommand() *cobra.Command {
	options := &rootOptions{}

	root := &cobra.Command{
		Use:           "plantcare",
		Short:         "Plant catalog and care reminder service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&options.configPath, "config", "", "path to config file (default plantcare.yaml when present)")

	root.AddCommand(newServeCommand(options))
	root.AddCommand(newMigrateCommand(options))
	root.AddCommand(newCatalogCommand(options))
	return root
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
