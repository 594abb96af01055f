package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/kamusis/recipes-cli/internal/recipe"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	flagSearchLimit int
	flagSearchYAML  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "List recipes matching every word of the query, best rated first",
	Long: `List recipes whose name, headline or ingredients contain every word of
the query. Without a query all recipes are listed.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&flagSearchLimit, "limit", "n", 0, "Maximum number of results (0 = config value or all)")
	searchCmd.Flags().BoolVar(&flagSearchYAML, "yaml", false, "Print results as YAML")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	engine, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	query := joinQuery(args)
	results := engine.Search(query)

	limit := cfg.Limit
	if cmd.Flags().Changed("limit") {
		limit = flagSearchLimit
	}
	total := len(results)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	if flagSearchYAML {
		return writeYAML(cmd.OutOrStdout(), results)
	}
	printSearchResults(cmd.OutOrStdout(), query, results, total)
	return nil
}

func printSearchResults(w io.Writer, query string, results []recipe.Record, total int) {
	if query == "" {
		printSection(w, "All recipes")
	} else {
		printSection(w, fmt.Sprintf("recipes search %q", query))
	}
	if len(results) < total {
		fmt.Fprintf(w, "Results (%d of %d shown):\n", len(results), total)
	} else {
		fmt.Fprintf(w, "Results (%d found):\n", total)
	}
	if len(results) == 0 {
		printMiss(w, "", "no matching recipe found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, r := range results {
		fmt.Fprintf(tw, "  %d.\t%s\t★ %s\t%s\n", i+1, r.Name, formatRating(r), formatCalories(r.Calories))
		if h := strings.TrimSpace(r.Headline); h != "" {
			fmt.Fprintf(tw, "  \t%s\n", h)
		}
	}
	_ = tw.Flush()
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("cannot encode YAML: %w", err)
	}
	return enc.Close()
}
