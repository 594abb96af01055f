package cmd

import (
	"github.com/kamusis/recipes-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagCatalog != "" {
		cfg.Catalog = flagCatalog
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	return writeYAML(cmd.OutOrStdout(), cfg)
}
