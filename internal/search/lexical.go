// Package search adapts the relational and vector stores to the retrieval
// pipeline's searcher interfaces.
package search

import (
	"context"

	"contexta/internal/retrieval"
	"contexta/internal/storage"
)

// LexicalSearcher implements retrieval.KeywordSearcher over the chunk
// store's BM25 full-text index.
type LexicalSearcher struct {
	chunks storage.ChunkStore
}

// NewLexicalSearcher creates a lexical searcher over the given chunk store.
func NewLexicalSearcher(chunks storage.ChunkStore) *LexicalSearcher {
	return &LexicalSearcher{chunks: chunks}
}

// KeywordSearch runs a full-text search and maps hits to candidates.
func (s *LexicalSearcher) KeywordSearch(ctx context.Context, query string, limit int) ([]retrieval.Candidate, error) {
	hits, err := s.chunks.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	candidates := make([]retrieval.Candidate, 0, len(hits))
	for _, hit := range hits {
		candidates = append(candidates, retrieval.Candidate{
			Content:          hit.Content,
			SourceType:       hit.SourceType,
			PageNumber:       hit.PageNumber,
			Keywords:         hit.Keywords,
			TypicalQuestions: hit.TypicalQuestions,
			Score:            hit.Score,
		})
	}
	return candidates, nil
}
