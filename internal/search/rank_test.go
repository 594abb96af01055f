package search

import (
	"testing"

	"github.com/kamusis/recipes-cli/internal/recipe"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func withFile(name, file string) recipe.Record {
	return recipe.Record{Name: name, File: file, Rating: recipe.RatingOf(4)}
}

func files(records []recipe.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.File
	}
	return out
}

func TestSortRecords_EqualNamesFallBackToFile(t *testing.T) {
	records := []recipe.Record{
		withFile("Stew", "b.pdf"),
		withFile("Stew", "a.pdf"),
		withFile("stew", "c.pdf"),
	}
	SortRecords(records, language.German)
	assert.Equal(t, []string{"c.pdf", "a.pdf", "b.pdf"}, files(records))
}

func TestCompare_CollatorTieFallsBackToBytes(t *testing.T) {
	col := collate.New(language.German, collate.IgnoreCase)
	upper, lower := withFile("Stew", "z.pdf"), withFile("stew", "a.pdf")

	assert.Equal(t, 0, col.CompareString(upper.Name, lower.Name))
	assert.Equal(t, -1, Compare(upper, lower, col))
	assert.Equal(t, 1, Compare(lower, upper, col))

	// Canonically equivalent spellings collate equal but differ in bytes.
	composed, decomposed := withFile("Caf\u00e9", "a.pdf"), withFile("Cafe\u0301", "b.pdf")
	records := []recipe.Record{composed, decomposed}
	SortRecords(records, language.German)
	assert.Equal(t, []string{"b.pdf", "a.pdf"}, files(records))
}

func TestCompare_IdenticalRecords(t *testing.T) {
	a := withFile("Stew", "a.pdf")
	assert.Equal(t, 0, Compare(a, a, collate.New(language.German)))
	assert.Equal(t, -1, Compare(a, withFile("Stew", "b.pdf"), nil))
}
