package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_store.go -package=mocks contexta/internal/vectorstore VectorStore

import "context"

// Point represents a vector point with metadata.
type Point struct {
	ID   string
	Vec  []float32
	Meta map[string]any
}

// SearchResult represents one nearest-neighbor search result.
// Score is the cosine similarity reported by the index (higher is closer);
// callers wanting a distance use 1 - Score.
type SearchResult struct {
	PointID string
	Score   float32
	Meta    map[string]any
}

// VectorStore defines the interface for vector index operations.
type VectorStore interface {
	// Upsert inserts or updates points in the collection.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Search performs a nearest-neighbor search over the collection.
	Search(ctx context.Context, collection string, query []float32, k int) ([]SearchResult, error)

	// DeleteBySourceType removes all points whose source_type payload field
	// matches sourceType.
	DeleteBySourceType(ctx context.Context, collection, sourceType string) error
}
