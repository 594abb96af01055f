package cmd

import (
	"fmt"
	"os"

	"github.com/kamusis/recipes-cli/internal/importer"
	"github.com/spf13/cobra"
)

var (
	flagImportSource   string
	flagImportExcludes []string
)

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Copy recipe files from a directory into the catalog directory",
	Long: `Copy recipe definitions (*.yaml, *.yml, *.md) and their documents
(*.pdf, images) into the configured catalog directory.

Identical files are skipped. A file that differs from the one already in the
catalog is stored beside it as <name>.conflict-<source>.<ext> and ignored by
search until you resolve it.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&flagImportSource, "source", "", "Name used in conflict files (default: source directory name)")
	importCmd.Flags().StringSliceVar(&flagImportExcludes, "exclude", nil, "Extra glob patterns to skip")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	info, err := os.Stat(cfg.Catalog)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(cfg.Catalog, 0o755); err != nil {
			return fmt.Errorf("cannot create catalog directory %s: %w", cfg.Catalog, err)
		}
	case err != nil:
		return fmt.Errorf("cannot stat catalog %s: %w", cfg.Catalog, err)
	case !info.IsDir():
		return fmt.Errorf("catalog %s is a file; import needs a catalog directory", cfg.Catalog)
	}

	excludes := append(append([]string{}, importer.DefaultExcludes...), flagImportExcludes...)
	res, err := importer.ImportDir(args[0], cfg.Catalog, flagImportSource, excludes)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	printSection(w, "Import")
	printOK(w, "", fmt.Sprintf("%d file(s) copied, %d recipe(s) new", res.Imported-len(res.Conflicts), res.RecipesImported))
	if res.Skipped > 0 {
		printInfo(w, "", fmt.Sprintf("%d identical file(s) skipped, %d recipe(s) unchanged", res.Skipped, res.RecipesSkipped))
	}
	if res.Ignored > 0 {
		printInfo(w, "", fmt.Sprintf("%d file(s) ignored", res.Ignored))
	}
	for _, c := range res.Conflicts {
		printWarn(w, "conflict", fmt.Sprintf("%s kept, incoming version saved as %s", c.Original, c.Conflict))
	}
	if res.RecipesConflicts > 0 {
		printWarn(w, "", fmt.Sprintf("%d recipe(s) have conflicts; run 'recipes doctor' to review them", res.RecipesConflicts))
	}
	return nil
}
