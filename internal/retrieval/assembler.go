package retrieval

import (
	"context"
	"log/slog"
	"strings"

	"contexta/internal/textproc"
)

// Assembler turns retrieval results into a single coherent context string
// for prompt injection. It holds no chunk storage of its own; candidates
// are borrowed read-only snapshots for the lifetime of one request.
type Assembler struct {
	router *Router
	logger *slog.Logger
}

// NewAssembler creates a context assembler over the given router.
func NewAssembler(router *Router) *Assembler {
	return &Assembler{
		router: router,
		logger: slog.Default(),
	}
}

// BuildContext classifies the query, retrieves candidates, and folds them
// through normalization and overlap-collapsing merge into one context
// string. Returns "" when no candidate survives relevance filtering.
// Read-only against storage.
func (a *Assembler) BuildContext(ctx context.Context, query string) (string, error) {
	candidates, err := a.router.Retrieve(ctx, query)
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		a.logger.InfoContext(ctx, "no relevant context found", "query", query)
		return "", nil
	}

	contents := make([]string, 0, len(candidates))
	for _, c := range candidates {
		contents = append(contents, c.Content)
	}
	merged := textproc.BuildContextString(contents)
	if merged == "" {
		return "", nil
	}

	if keywords := collectKeywords(candidates); len(keywords) > 0 {
		merged += "\n\nKeywords: " + strings.Join(keywords, ", ")
	}

	a.logger.InfoContext(ctx, "context assembled",
		"query", query,
		"candidates", len(candidates),
		"context_length", len(merged),
	)
	return merged, nil
}

// collectKeywords returns the union of candidate keywords, first-seen order.
func collectKeywords(candidates []Candidate) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, c := range candidates {
		for _, kw := range c.Keywords {
			kw = strings.TrimSpace(kw)
			if kw == "" || seen[kw] {
				continue
			}
			seen[kw] = true
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
