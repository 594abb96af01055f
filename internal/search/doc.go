// Package search implements keyword search over an immutable recipe catalog.
//
// An Index answers which catalog keys satisfy a query: the query is split on
// whitespace and every token must occur, case-insensitively, as a substring of
// the recipe name, its headline or one of its ingredient names. A blank query
// matches the whole catalog.
//
// An Engine wraps an Index and adds ranking (rating descending, unrated last,
// then name) and uniform random selection among the matches.
//
// Both types hold no mutable state after construction and may be shared
// between goroutines.
package search
