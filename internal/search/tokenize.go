package search

import "strings"

// Tokenize splits q on runs of whitespace and lower-cases every token.
// A blank query yields no tokens.
func Tokenize(q string) []string {
	parts := strings.Fields(q)
	if len(parts) == 0 {
		return nil
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.ToLower(p))
	}
	return out
}
