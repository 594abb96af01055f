package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kamusis/recipes-cli/internal/config"
	"github.com/kamusis/recipes-cli/internal/importer"
	"github.com/spf13/cobra"
)

// errDoctorIssues is returned after doctor has printed its findings.
var errDoctorIssues = errors.New("doctor found issues")

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check config, catalog and recipe files",
	Long: `Check that the config is valid, the catalog loads, every recipe's file
reference resolves under the library, and no import conflicts are left over.
Run this command when something seems wrong.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

var doctorFixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Automatically fix detected issues",
	Long: `Fix detected issues in the recipe catalog.

Currently fixes:
  - Unresolved import conflicts: deletes all .conflict-* files from the catalog directory

Run 'recipes doctor' first to see what will be fixed.`,
	Args: cobra.NoArgs,
	RunE: runDoctorFix,
}

func init() {
	doctorCmd.AddCommand(doctorFixCmd)
	rootCmd.AddCommand(doctorCmd)
}

func runDoctorFix(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	printSection(w, "recipes doctor fix")

	// ── Fix: delete all .conflict-* files ─────────────────────────────────────
	fmt.Fprintln(w, "\n[ Unresolved conflicts ]")
	if !isDir(cfg.Catalog) {
		printOK(w, "", "catalog is a single file — nothing to fix")
		return nil
	}
	conflicts, err := importer.FindConflicts(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("cannot scan %s: %w", cfg.Catalog, err)
	}
	if len(conflicts) == 0 {
		printOK(w, "", "no conflict files found — nothing to fix")
		return nil
	}

	var failed int
	for _, rel := range conflicts {
		if err := os.Remove(filepath.Join(cfg.Catalog, rel)); err != nil {
			printErr(cmd.ErrOrStderr(), "", fmt.Sprintf("cannot delete %s: %v", rel, err))
			failed++
		} else {
			printOK(w, "", fmt.Sprintf("deleted %s", rel))
		}
	}

	fmt.Fprintln(w)
	if failed > 0 {
		return fmt.Errorf("%d file(s) could not be deleted", failed)
	}
	fmt.Fprintf(w, "  ✓  %d conflict file(s) removed.\n", len(conflicts))
	return nil
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	errW := cmd.ErrOrStderr()
	allOK := true
	failD := func(format string, args ...any) {
		printErr(w, "", fmt.Sprintf(format, args...))
		allOK = false
	}
	skipped := func() { printWarn(w, "", "skipped (config not valid)") }

	printSection(w, "recipes doctor")
	fmt.Fprintln(w)

	// ── Check 1: config is valid ──────────────────────────────────────────────
	fmt.Fprintln(w, "[ Config ]")
	cfg, cfgErr := config.Load()
	if cfgErr == nil {
		applyGlobalFlags(cmd, cfg)
		cfgErr = cfg.Validate()
	}
	if cfgErr != nil {
		failD("%v", cfgErr)
	} else {
		printOK(w, "", fmt.Sprintf("catalog: %s", cfg.Catalog))
		if cfg.Library != "" {
			printOK(w, "", fmt.Sprintf("library: %s", cfg.Library))
		} else {
			printInfo(w, "", "no library set — file references resolve as written")
		}
	}
	fmt.Fprintln(w)

	// ── Check 2: catalog loads ────────────────────────────────────────────────
	fmt.Fprintln(w, "[ Catalog ]")
	var loadErr error
	var missing, remote int
	if cfgErr == nil {
		engine, err := loadEngine(cfg)
		loadErr = err
		if err != nil {
			failD("cannot load catalog: %v", err)
		} else {
			printOK(w, "", fmt.Sprintf("%d recipe(s) loaded", engine.Count("")))
			fmt.Fprintln(w)

			// ── Check 3: file references resolve ──────────────────────────────
			fmt.Fprintln(w, "[ Recipe files ]")
			cat := engine.Index().Catalog()
			for _, key := range cat.Keys() {
				r, _ := cat.Get(key)
				target := cfg.ResolveFile(r.File)
				switch {
				case target == "":
					printWarn(w, key, "no file reference")
				case config.IsURL(target):
					remote++
				default:
					if _, err := os.Stat(target); err != nil {
						printMiss(w, key, fmt.Sprintf("%s not found", target))
						missing++
					}
				}
			}
			if missing > 0 {
				failD("%d recipe file(s) missing", missing)
			} else {
				printOK(w, "", "all local recipe files found")
			}
			if remote > 0 {
				printInfo(w, "", fmt.Sprintf("%d remote reference(s) not checked", remote))
			}
		}
	} else {
		skipped()
	}
	fmt.Fprintln(w)

	// ── Check 4: unresolved import conflicts ──────────────────────────────────
	fmt.Fprintln(w, "[ Unresolved conflicts ]")
	switch {
	case cfgErr != nil:
		skipped()
	case !isDir(cfg.Catalog):
		printOK(w, "", "catalog is a single file — no imports to check")
	default:
		conflicts, err := importer.FindConflicts(cfg.Catalog)
		if err != nil {
			failD("cannot scan %s: %v", cfg.Catalog, err)
			break
		}
		if len(conflicts) == 0 {
			printOK(w, "", "no unresolved conflict files found")
			break
		}
		for _, c := range conflicts {
			printWarn(w, "", c)
		}
		fmt.Fprintf(w, "\n  ⚠  %d unresolved conflict file(s) found in the catalog.\n", len(conflicts))
		fmt.Fprintln(w, "     Merge what you need into the original recipe, then run")
		fmt.Fprintln(w, "     'recipes doctor fix' to delete the .conflict-* files.")
		allOK = false
	}
	fmt.Fprintln(w)

	// ── Summary ───────────────────────────────────────────────────────────────
	fmt.Fprintln(w, "===================")
	if allOK && loadErr == nil {
		fmt.Fprintln(w, "✓  All checks passed.")
		return nil
	}
	fmt.Fprintln(errW, "✗  One or more checks failed. See details above.")
	return errDoctorIssues
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
