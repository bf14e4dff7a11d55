package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"contexta/internal/retrieval"
	"contexta/internal/storage"
	"contexta/internal/vectorstore"
)

// Embedder generates embedding vectors for texts.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// VectorSearcher implements retrieval.SemanticSearcher by embedding the
// query, running a nearest-neighbor search, and hydrating candidate content
// from the chunk store.
type VectorSearcher struct {
	embedder   Embedder
	store      vectorstore.VectorStore
	chunks     storage.ChunkStore
	collection string
	logger     *slog.Logger
}

// NewVectorSearcher creates a semantic searcher.
func NewVectorSearcher(embedder Embedder, store vectorstore.VectorStore, chunks storage.ChunkStore, collection string) *VectorSearcher {
	return &VectorSearcher{
		embedder:   embedder,
		store:      store,
		chunks:     chunks,
		collection: collection,
		logger:     slog.Default(),
	}
}

// SemanticSearch embeds query and returns the nearest chunks as candidates,
// ranked by ascending distance. The index reports cosine similarity;
// Distance is 1 - similarity, so lower is more relevant.
func (s *VectorSearcher) SemanticSearch(ctx context.Context, query string, limit int) ([]retrieval.Candidate, error) {
	embeddings, err := s.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embedding returned for query")
	}

	results, err := s.store.Search(ctx, s.collection, embeddings[0], limit)
	if err != nil {
		return nil, err
	}

	candidates := make([]retrieval.Candidate, 0, len(results))
	for _, result := range results {
		chunk, err := s.chunks.GetByID(ctx, result.PointID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				// Index and relational store disagree; skip the orphan.
				s.logger.WarnContext(ctx, "indexed point missing from chunk store", "point_id", result.PointID)
				continue
			}
			return nil, err
		}

		candidates = append(candidates, retrieval.Candidate{
			Content:          chunk.Content,
			SourceType:       chunk.SourceType,
			PageNumber:       chunk.PageNumber,
			Keywords:         chunk.Keywords,
			TypicalQuestions: chunk.TypicalQuestions,
			Distance:         1 - float64(result.Score),
		})
	}
	return candidates, nil
}
