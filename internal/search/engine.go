package search

import (
	"math/rand/v2"

	"github.com/kamusis/recipes-cli/internal/recipe"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// Rand is the random source used by Engine.Random. *rand.Rand satisfies it.
type Rand interface {
	// IntN returns a uniform value in [0, n). n is always > 0.
	IntN(n int) int
}

// globalRand draws from the math/rand/v2 top-level generator, which is safe
// for concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source. A nil r keeps the default.
func WithRand(r Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rand = r
		}
	}
}

// WithLanguage sets the collation used to break rating ties by name.
func WithLanguage(tag language.Tag) Option {
	return func(e *Engine) { e.lang = tag }
}

// WithLogger sets the logger used for per-query debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// Engine ranks and samples the results of an Index.
type Engine struct {
	index *Index
	rand  Rand
	lang  language.Tag
	log   zerolog.Logger
}

// NewEngine builds an index over c and wraps it.
func NewEngine(c *recipe.Catalog, opts ...Option) *Engine {
	return NewEngineWithIndex(NewIndex(c), opts...)
}

// NewEngineWithIndex wraps an existing index.
func NewEngineWithIndex(idx *Index, opts ...Option) *Engine {
	e := &Engine{
		index: idx,
		rand:  globalRand{},
		lang:  DefaultLanguage,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Index returns the underlying index.
func (e *Engine) Index() *Index {
	return e.index
}

// Search returns the records matching query, best rated first.
// The returned slice is newly allocated on every call.
func (e *Engine) Search(query string) []recipe.Record {
	results := e.index.Search(query)
	SortRecords(results, e.lang)
	e.log.Debug().Str("query", query).Int("matches", len(results)).Msg("search")
	return results
}

// Count returns how many records match query.
func (e *Engine) Count(query string) int {
	return len(e.index.matchingKeys(Tokenize(query)))
}

// Random picks one of the records matching query uniformly at random.
// It reports false when nothing matches.
func (e *Engine) Random(query string) (recipe.Record, bool) {
	results := e.index.Search(query)
	if len(results) == 0 {
		e.log.Debug().Str("query", query).Msg("random: no match")
		return recipe.Record{}, false
	}
	i := e.rand.IntN(len(results))
	e.log.Debug().Str("query", query).Int("matches", len(results)).Int("pick", i).Msg("random")
	return results[i], true
}
