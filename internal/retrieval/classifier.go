package retrieval

import "strings"

// IsWeak reports whether a query is too short or too sparse to perform well
// under dense vector search. Weak queries route through expansion and
// lexical search; everything else goes straight to semantic search.
//
// A query is weak if it has fewer than cfg.WeakMinTokens whitespace-delimited
// tokens, or if its raw length is under cfg.WeakMinLength characters.
func (c Config) IsWeak(query string) bool {
	if len(query) < c.WeakMinLength {
		return true
	}
	return len(strings.Fields(query)) < c.WeakMinTokens
}
