package search

import (
	"strings"

	"github.com/kamusis/recipes-cli/internal/recipe"
)

// entry holds the lower-cased searchable fields of one record.
type entry struct {
	name        string
	headline    string
	ingredients []string
}

func newEntry(r recipe.Record) entry {
	e := entry{
		name:     strings.ToLower(r.Name),
		headline: strings.ToLower(r.Headline),
	}
	if len(r.Ingredients) > 0 {
		e.ingredients = make([]string, 0, len(r.Ingredients))
		for _, ing := range r.Ingredients {
			e.ingredients = append(e.ingredients, strings.ToLower(ing.Name))
		}
	}
	return e
}

// matches reports whether token (already lower-cased) is contained in the
// name, the headline or any ingredient name.
func (e entry) matches(token string) bool {
	if strings.Contains(e.name, token) || strings.Contains(e.headline, token) {
		return true
	}
	for _, ing := range e.ingredients {
		if strings.Contains(ing, token) {
			return true
		}
	}
	return false
}

// Index resolves queries to catalog keys.
type Index struct {
	catalog *recipe.Catalog
	keys    []string
	entries map[string]entry
}

// NewIndex builds an index over c. The catalog must not change afterwards;
// recipe.Catalog guarantees that.
func NewIndex(c *recipe.Catalog) *Index {
	if c == nil {
		c = recipe.NewCatalog(nil)
	}
	idx := &Index{
		catalog: c,
		keys:    c.Keys(),
		entries: make(map[string]entry, c.Len()),
	}
	c.Each(func(key string, r recipe.Record) bool {
		idx.entries[key] = newEntry(r)
		return true
	})
	return idx
}

// Catalog returns the catalog the index was built from.
func (idx *Index) Catalog() *recipe.Catalog {
	return idx.catalog
}

// Len returns the number of indexed records.
func (idx *Index) Len() int {
	return len(idx.keys)
}

// FindKeys returns the set of keys whose record matches every token of query.
// A query without tokens returns every key.
func (idx *Index) FindKeys(query string) map[string]struct{} {
	keys := idx.matchingKeys(Tokenize(query))
	out := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		out[k] = struct{}{}
	}
	return out
}

// Search returns the records matching query. The order is deterministic
// (ascending key) but carries no ranking; see Engine.Search for that.
func (idx *Index) Search(query string) []recipe.Record {
	keys := idx.matchingKeys(Tokenize(query))
	out := make([]recipe.Record, 0, len(keys))
	for _, k := range keys {
		r, _ := idx.catalog.Get(k)
		out = append(out, r)
	}
	return out
}

// matchingKeys filters the sorted key list down to the keys whose entry
// satisfies all tokens.
func (idx *Index) matchingKeys(tokens []string) []string {
	out := make([]string, 0, len(idx.keys))
	for _, k := range idx.keys {
		e := idx.entries[k]
		ok := true
		for _, tok := range tokens {
			if !e.matches(tok) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, k)
		}
	}
	return out
}
