package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kamusis/recipes-cli/internal/config"
	"github.com/spf13/cobra"
)

var flagInitForce bool

var initCmd = &cobra.Command{
	Use:   "init [catalog]",
	Short: "Write a default ~/.recipes/recipes.yaml",
	Long: `Create ~/.recipes/ (or $RECIPES_HOME) with a recipes.yaml and a .env template.

The optional argument sets the catalog: a YAML/JSON catalog file or a
directory of recipe files.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&flagInitForce, "force", false, "Overwrite an existing recipes.yaml")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	dir, err := config.HomeDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	printOK(w, "", fmt.Sprintf("recipes directory ready: %s", dir))

	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfgPath); err == nil && !flagInitForce {
		printInfo(w, "", fmt.Sprintf("config already exists, left untouched: %s", cfgPath))
	} else {
		cfg, err := config.DefaultConfig()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			p, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			cfg.Catalog = p
			cfg.Library = p
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				cfg.Library = filepath.Dir(p)
			}
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK(w, "", fmt.Sprintf("config written: %s", cfgPath))
	}

	if err := config.EnsureDotEnvTemplate(); err != nil {
		return err
	}
	p, _ := config.DotEnvPath()
	printOK(w, "", fmt.Sprintf("env overrides: %s", p))
	return nil
}
