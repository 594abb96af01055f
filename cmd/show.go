package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kamusis/recipes-cli/internal/config"
	"github.com/kamusis/recipes-cli/internal/recipe"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Show one recipe with its ingredients",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	engine, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	r, ok := engine.Index().Catalog().Get(args[0])
	if !ok {
		return fmt.Errorf("recipe %q not found in %s", args[0], cfg.Catalog)
	}
	printRecipe(cmd.OutOrStdout(), cfg, r)
	return nil
}

func printRecipe(w io.Writer, cfg *config.Config, r recipe.Record) {
	printSection(w, r.Name)
	if r.Headline != "" {
		fmt.Fprintf(w, "%s\n", r.Headline)
	}
	fmt.Fprintf(w, "\nRating:   %s\n", formatRating(r))
	fmt.Fprintf(w, "Calories: %s\n", formatCalories(r.Calories))
	if f := cfg.ResolveFile(r.File); f != "" {
		fmt.Fprintf(w, "File:     %s\n", f)
	}

	fmt.Fprintf(w, "\nIngredients (%d):\n", len(r.Ingredients))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, ing := range r.Ingredients {
		fmt.Fprintf(tw, "  -\t%s\t%s\n", ing.Quantity, ing.Name)
	}
	_ = tw.Flush()
}
