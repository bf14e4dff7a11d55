package retrieval

import (
	"context"
	"fmt"
	"log/slog"
)

// Router dispatches a query to lexical or semantic search depending on its
// classification, and filters the results by the configured relevance
// thresholds.
type Router struct {
	cfg      Config
	expander *Expander
	keyword  KeywordSearcher
	semantic SemanticSearcher
	logger   *slog.Logger
}

// NewRouter creates a retrieval router.
func NewRouter(cfg Config, expander *Expander, keyword KeywordSearcher, semantic SemanticSearcher) *Router {
	return &Router{
		cfg:      cfg,
		expander: expander,
		keyword:  keyword,
		semantic: semantic,
		logger:   slog.Default(),
	}
}

// Retrieve returns relevant candidates for query, in the ranking order
// supplied by the underlying search. An empty result after filtering is a
// valid "no relevant context" outcome, not an error.
func (r *Router) Retrieve(ctx context.Context, query string) ([]Candidate, error) {
	if r.cfg.IsWeak(query) {
		return r.retrieveLexical(ctx, query)
	}
	return r.retrieveSemantic(ctx, query)
}

func (r *Router) retrieveLexical(ctx context.Context, query string) ([]Candidate, error) {
	expanded := r.expander.Expand(ctx, query)

	results, err := r.keyword.KeywordSearch(ctx, expanded, r.cfg.LexicalLimit)
	if err != nil {
		return nil, fmt.Errorf("keyword search failed: %w", err)
	}

	kept := make([]Candidate, 0, len(results))
	for _, c := range results {
		if c.Score >= r.cfg.ScoreThreshold {
			kept = append(kept, c)
		}
	}

	r.logger.InfoContext(ctx, "lexical retrieval completed",
		"query", query,
		"expanded", expanded,
		"results", len(results),
		"kept", len(kept),
		"score_threshold", r.cfg.ScoreThreshold,
	)
	return kept, nil
}

func (r *Router) retrieveSemantic(ctx context.Context, query string) ([]Candidate, error) {
	results, err := r.semantic.SemanticSearch(ctx, query, r.cfg.SemanticLimit)
	if err != nil {
		return nil, fmt.Errorf("semantic search failed: %w", err)
	}

	kept := make([]Candidate, 0, len(results))
	for _, c := range results {
		if c.Distance <= r.cfg.DistanceThreshold {
			kept = append(kept, c)
		}
	}

	r.logger.InfoContext(ctx, "semantic retrieval completed",
		"query", query,
		"results", len(results),
		"kept", len(kept),
		"distance_threshold", r.cfg.DistanceThreshold,
	)
	return kept, nil
}
