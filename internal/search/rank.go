package search

import (
	"math"
	"sort"
	"strings"

	"github.com/kamusis/recipes-cli/internal/recipe"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLanguage is the collation used for name tie-breaks when none is set.
var DefaultLanguage = language.German

// rating returns the rating of r and whether it counts as present.
// NaN ranks like a missing rating.
func rating(r recipe.Record) (float64, bool) {
	if r.Rating == nil || math.IsNaN(*r.Rating) {
		return 0, false
	}
	return *r.Rating, true
}

// Compare orders a before b when it has the higher rating. Unrated records
// come after every rated one. Equal ratings fall back to the collated name,
// then the byte-wise name, then the file reference.
func Compare(a, b recipe.Record, col *collate.Collator) int {
	ra, okA := rating(a)
	rb, okB := rating(b)
	switch {
	case okA && !okB:
		return -1
	case !okA && okB:
		return 1
	case okA && okB && ra != rb:
		if ra > rb {
			return -1
		}
		return 1
	}
	if col != nil {
		if c := col.CompareString(a.Name, b.Name); c != 0 {
			return c
		}
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return strings.Compare(a.File, b.File)
}

// SortRecords sorts records in place by Compare using the collation for tag.
func SortRecords(records []recipe.Record, tag language.Tag) {
	// collate.Collator keeps internal buffers, so every sort gets its own.
	col := collate.New(tag)
	sort.SliceStable(records, func(i, j int) bool {
		return Compare(records[i], records[j], col) < 0
	})
}
