package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kamusis/recipes-cli/internal/catalog"
	"github.com/kamusis/recipes-cli/internal/config"
	"github.com/kamusis/recipes-cli/internal/obs"
	"github.com/kamusis/recipes-cli/internal/search"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var (
	flagCatalog  string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:           "recipes",
	Short:         "Search your recipe collection or let it pick dinner",
	SilenceUsage:  true, // don't print usage on operational errors
	SilenceErrors: true, // Execute prints the error once
	Long: `recipes searches a recipe catalog by name, headline and ingredients.

Every word of a query must match (case-insensitive, partial words allowed).
Results are ranked by rating, unrated recipes last.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level := flagLogLevel
		if level == "" {
			if v, err := config.GetConfigValue(config.EnvLogLevel); err == nil {
				level = v
			}
		}
		obs.InitLogger(cmd.ErrOrStderr(), level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Catalog file or recipe directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err unless the command already told the user about it.
func reportError(w io.Writer, err error) {
	if errors.Is(err, errNoMatch) || errors.Is(err, errDoctorIssues) {
		return
	}
	fmt.Fprintln(w, err)
}

// loadConfig loads the effective config, applies the global flags and
// re-initialises logging with the final log level.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w\nRun 'recipes init' first.", err)
	}
	applyGlobalFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyGlobalFlags lets --catalog and --log-level override cfg.
func applyGlobalFlags(cmd *cobra.Command, cfg *config.Config) {
	if flagCatalog != "" {
		cfg.Catalog = flagCatalog
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	obs.InitLogger(cmd.ErrOrStderr(), cfg.LogLevel)
}

// loadEngine loads the catalog named by cfg and builds a search engine over it.
func loadEngine(cfg *config.Config, opts ...search.Option) (*search.Engine, error) {
	log := obs.Logger("catalog")

	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", cfg.Catalog).Int("recipes", cat.Len()).Msg("catalog loaded")

	tag := search.DefaultLanguage
	if cfg.Language != "" {
		tag, err = language.Parse(cfg.Language)
		if err != nil {
			return nil, fmt.Errorf("invalid language %q: %w", cfg.Language, err)
		}
	}

	opts = append([]search.Option{
		search.WithLanguage(tag),
		search.WithLogger(obs.Logger("search")),
	}, opts...)
	return search.NewEngine(cat, opts...), nil
}
