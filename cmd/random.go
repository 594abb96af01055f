package cmd

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/kamusis/recipes-cli/internal/config"
	"github.com/kamusis/recipes-cli/internal/recipe"
	"github.com/spf13/cobra"
)

// errNoMatch is returned by the random command when the query matches nothing.
var errNoMatch = errors.New("no matching recipe found")

var (
	flagRandomOpen bool
	flagRandomCopy bool
)

// Swapped out in tests.
var (
	openTarget    = platformOpen
	copyClipboard = clipboard.WriteAll
)

var randomCmd = &cobra.Command{
	Use:   "random [query...]",
	Short: "Pick one matching recipe at random",
	Long: `Pick one recipe uniformly at random among those matching the query.
Without a query any recipe can be picked.`,
	Args: cobra.ArbitraryArgs,
	RunE: runRandom,
}

func init() {
	randomCmd.Flags().BoolVar(&flagRandomOpen, "open", false, "Open the recipe file with the system viewer")
	randomCmd.Flags().BoolVar(&flagRandomCopy, "copy", false, "Copy the recipe file location to the clipboard")
	rootCmd.AddCommand(randomCmd)
}

func runRandom(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	engine, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	query := joinQuery(args)
	r, ok := engine.Random(query)
	if !ok {
		printErr(cmd.ErrOrStderr(), "", fmt.Sprintf("nothing matches %q", query))
		return errNoMatch
	}
	return presentPick(cmd.OutOrStdout(), cfg, r)
}

// presentPick prints the picked recipe and runs the requested follow-up actions.
func presentPick(w io.Writer, cfg *config.Config, r recipe.Record) error {
	target := cfg.ResolveFile(r.File)

	printSection(w, "Random pick")
	printOK(w, "", fmt.Sprintf("%s (★ %s, %s)", r.Name, formatRating(r), formatCalories(r.Calories)))
	if r.Headline != "" {
		printInfo(w, "", r.Headline)
	}
	if target != "" {
		printInfo(w, "file", target)
	} else {
		printWarn(w, "file", "recipe has no file reference")
	}

	if flagRandomCopy && target != "" {
		if err := copyClipboard(target); err != nil {
			printWarn(w, "copy", fmt.Sprintf("cannot copy to clipboard: %v", err))
		} else {
			printOK(w, "copy", "file location copied to clipboard")
		}
	}
	if flagRandomOpen && target != "" {
		if err := openTarget(target); err != nil {
			return fmt.Errorf("cannot open %s: %w", target, err)
		}
		printOK(w, "open", target)
	}
	return nil
}

// platformOpen hands target to the desktop's default handler.
func platformOpen(target string) error {
	var c *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		c = exec.Command("open", target)
	case "windows":
		c = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		c = exec.Command("xdg-open", target)
	}
	return c.Start()
}
