package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kamusis/recipes-cli/internal/recipe"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// All commands use these functions to ensure consistent icon usage and
// indentation.
//
// Icon semantics:
//   ✓  success
//   ✗  error / failure          (written to stderr by the caller)
//   ⚠  warning
//   -  not found / missing
//   ~  neutral info

// printSection prints a top-level section header, e.g. "=== Search ===".
func printSection(w io.Writer, title string) {
	fmt.Fprintf(w, "\n=== %s ===\n", title)
}

func printLine(w io.Writer, icon, name, msg string) {
	if name == "" {
		fmt.Fprintf(w, "  %s  %s\n", icon, msg)
	} else {
		fmt.Fprintf(w, "  %s  [%s] %s\n", icon, name, msg)
	}
}

// printOK prints a success line.
//
//	name = "" → "  ✓  msg"
//	name set  → "  ✓  [name] msg"
func printOK(w io.Writer, name, msg string) { printLine(w, "✓", name, msg) }

// printErr prints an error line.
func printErr(w io.Writer, name, msg string) { printLine(w, "✗", name, msg) }

// printWarn prints a warning line.
func printWarn(w io.Writer, name, msg string) { printLine(w, "⚠", name, msg) }

// printMiss prints a not-found line.
func printMiss(w io.Writer, name, msg string) { printLine(w, "-", name, msg) }

// printInfo prints a neutral informational line.
func printInfo(w io.Writer, name, msg string) { printLine(w, "~", name, msg) }

// formatRating renders a recipe's rating, or "-" when it has none.
func formatRating(r recipe.Record) string {
	if !r.HasRating() {
		return "-"
	}
	return strconv.FormatFloat(*r.Rating, 'f', -1, 64)
}

// formatCalories renders calories without a trailing ".0".
func formatCalories(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64) + " kcal"
}

func joinQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
