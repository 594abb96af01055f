package search

import "github.com/kamusis/recipes-cli/internal/recipe"

func steak() recipe.Record {
	return recipe.Record{
		Name:        "Steak",
		Headline:    "nice and juicy",
		Ingredients: []recipe.Ingredient{{Name: "beef", Quantity: "200g"}},
		Rating:      recipe.RatingOf(4.0),
		File:        "Steak.pdf",
		Calories:    500,
	}
}

func stew() recipe.Record {
	return recipe.Record{
		Name:        "Stew",
		Headline:    "with pork",
		Ingredients: []recipe.Ingredient{{Name: "pork", Quantity: "300g"}},
		Rating:      recipe.RatingOf(3.55),
		File:        "Stew.pdf",
		Calories:    350,
	}
}

func catalogOf(records ...recipe.Record) *recipe.Catalog {
	m := make(map[string]recipe.Record, len(records))
	for _, r := range records {
		m[r.Name] = r
	}
	return recipe.NewCatalog(m)
}

func names(records []recipe.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func keySet(keys ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		out[k] = struct{}{}
	}
	return out
}
