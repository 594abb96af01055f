package search

import (
	"testing"

	"github.com/kamusis/recipes-cli/internal/recipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestIndex() *Index {
	return NewIndex(recipe.NewCatalog(map[string]recipe.Record{
		"Stew": {
			Name:        "Stew",
			Headline:    "with meat and veggies",
			File:        "Stew.pdf",
			Rating:      recipe.RatingOf(4.0),
			Calories:    800,
			Ingredients: []recipe.Ingredient{{Name: "beef", Quantity: "500 g"}},
		},
		"Steak": {
			Name:        "Steak",
			Headline:    "juicy beefy",
			File:        "Steak.pdf",
			Rating:      recipe.RatingOf(3.0),
			Calories:    800,
			Ingredients: []recipe.Ingredient{{Name: "beef", Quantity: "500 g"}},
		},
	}))
}

func TestIndex_FindKeys(t *testing.T) {
	idx := setupTestIndex()

	tests := []struct {
		name  string
		query string
		want  map[string]struct{}
	}{
		{"by name", "Stew", keySet("Stew")},
		{"empty query", "", keySet("Steak", "Stew")},
		{"whitespace only", "  \t \n ", keySet("Steak", "Stew")},
		{"no match", "Tacos", keySet()},
		{"lower case name", "stew", keySet("Stew")},
		{"upper case name", "STEW", keySet("Stew")},
		{"partial word", "tew", keySet("Stew")},
		{"headline", "VEGGIES", keySet("Stew")},
		{"ingredient mixed case", "BeEf", keySet("Stew", "Steak")},
		{"all words required", "beef veggies", keySet("Stew")},
		{"extra whitespace between words", "  beef    veggies  ", keySet("Stew")},
		{"one word missing", "beef tacos", keySet()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, idx.FindKeys(tt.query))
		})
	}
}

func TestIndex_FindKeys_TokensMatchDifferentFields(t *testing.T) {
	idx := NewIndex(recipe.NewCatalog(map[string]recipe.Record{
		"goulash": {
			Name:        "Goulash",
			Headline:    "slow cooked",
			Ingredients: []recipe.Ingredient{{Name: "paprika"}, {Name: "onion"}},
		},
		"soup": {
			Name:        "Onion Soup",
			Headline:    "french classic",
			Ingredients: []recipe.Ingredient{{Name: "onion"}},
		},
	}))

	// "goul" only hits a name and "paprika" only an ingredient.
	assert.Equal(t, keySet("goulash"), idx.FindKeys("goul paprika"))
	// "slow" hits a headline, "onion" an ingredient.
	assert.Equal(t, keySet("goulash"), idx.FindKeys("slow onion"))
	assert.Equal(t, keySet("goulash", "soup"), idx.FindKeys("onion"))
}

func TestIndex_FindKeys_QuantityIsNotSearchable(t *testing.T) {
	idx := NewIndex(catalogOf(steak()))
	assert.Empty(t, idx.FindKeys("200g"))
}

func TestIndex_FindKeys_IsPure(t *testing.T) {
	idx := setupTestIndex()
	first := idx.FindKeys("beef")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, idx.FindKeys("beef"))
	}
}

func TestIndex_EmptyCatalog(t *testing.T) {
	idx := NewIndex(recipe.NewCatalog(nil))
	assert.Empty(t, idx.FindKeys(""))
	assert.Empty(t, idx.FindKeys("beef"))
	assert.Empty(t, idx.Search(""))

	assert.Empty(t, NewIndex(nil).FindKeys(""))
}

func TestIndex_Search_ReturnsFullRecords(t *testing.T) {
	idx := setupTestIndex()
	recipes := idx.Search("beef veggies")
	require.Len(t, recipes, 1)
	assert.Equal(t, "Stew", recipes[0].Name)
	assert.Equal(t, "Stew.pdf", recipes[0].File)
	require.NotNil(t, recipes[0].Rating)
	assert.Equal(t, 4.0, *recipes[0].Rating)
}

func TestIndex_Search_DoesNotExposeCatalog(t *testing.T) {
	idx := setupTestIndex()
	got := idx.Search("Stew")
	require.Len(t, got, 1)
	got[0].Ingredients[0].Name = "tofu"
	*got[0].Rating = 0

	again := idx.Search("Stew")
	require.Len(t, again, 1)
	assert.Equal(t, "beef", again[0].Ingredients[0].Name)
	assert.Equal(t, 4.0, *again[0].Rating)
}

func TestIndex_UnaffectedByCallerMutation(t *testing.T) {
	m := map[string]recipe.Record{"Steak": steak()}
	idx := NewIndex(recipe.NewCatalog(m))

	delete(m, "Steak")
	m["Stew"] = stew()

	assert.Equal(t, keySet("Steak"), idx.FindKeys(""))
}

func TestEntry_Matches(t *testing.T) {
	e := newEntry(steak())
	assert.True(t, e.matches("steak"))
	assert.True(t, e.matches("juicy"))
	assert.True(t, e.matches("bee"))
	assert.False(t, e.matches("pork"))
	assert.False(t, e.matches("200g"))
}

func TestTokenize(t *testing.T) {
	assert.Nil(t, Tokenize(""))
	assert.Nil(t, Tokenize("   "))
	assert.Equal(t, []string{"beef", "veggies"}, Tokenize(" Beef\tVEGGIES\n"))
}
