// Package recipe defines the recipe record and the immutable catalog that the
// search core works on.
package recipe

// Ingredient is one line of a recipe's ingredient list. Only Name is searchable.
type Ingredient struct {
	Name     string `yaml:"name"`
	Quantity string `yaml:"quantity"`
}

// Record represents one recipe.
type Record struct {
	Name        string       `yaml:"name"`
	Headline    string       `yaml:"headline"`
	Ingredients []Ingredient `yaml:"ingredients"`
	// Rating is nil when the recipe has not been rated.
	Rating   *float64 `yaml:"rating"`
	File     string   `yaml:"file"`
	Calories float64  `yaml:"calories"`
}

// RatingOf returns a present rating holding v.
func RatingOf(v float64) *float64 {
	return &v
}

// HasRating reports whether r carries a rating.
func (r Record) HasRating() bool {
	return r.Rating != nil
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	out := r
	if r.Ingredients != nil {
		out.Ingredients = make([]Ingredient, len(r.Ingredients))
		copy(out.Ingredients, r.Ingredients)
	}
	if r.Rating != nil {
		out.Rating = RatingOf(*r.Rating)
	}
	return out
}
