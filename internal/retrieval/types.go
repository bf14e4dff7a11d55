package retrieval

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_searchers.go -package=mocks contexta/internal/retrieval KeywordSearcher,SemanticSearcher,CompletionClient

import (
	"context"

	"contexta/internal/llm"
)

// Candidate is a transient, read-only projection of a stored context chunk
// plus its retrieval metric. Exactly one of Distance (semantic path, lower
// is more relevant) or Score (lexical path, higher is more relevant) is
// meaningful, depending on which search produced it.
type Candidate struct {
	Content          string
	SourceType       string
	PageNumber       int
	Keywords         []string
	TypicalQuestions []string
	Distance         float64
	Score            float64
}

// KeywordSearcher performs lexical (BM25-style) search over chunk content,
// keywords and typical questions. Results are ranked by descending score.
type KeywordSearcher interface {
	KeywordSearch(ctx context.Context, query string, limit int) ([]Candidate, error)
}

// SemanticSearcher performs dense nearest-neighbor search over chunk
// content embeddings. Results are ranked by ascending distance.
type SemanticSearcher interface {
	SemanticSearch(ctx context.Context, query string, limit int) ([]Candidate, error)
}

// CompletionClient is the narrow slice of the LLM client the query
// expander needs.
type CompletionClient interface {
	ChatWithMessages(ctx context.Context, messages []llm.Message, params llm.ChatParams) (string, error)
}

// Config holds the tunable parameters of the retrieval pipeline.
// The relevance thresholds are deliberately configuration values; the right
// cutoffs depend on the embedding model and corpus.
type Config struct {
	// WeakMinTokens is the token count below which a query is weak.
	WeakMinTokens int
	// WeakMinLength is the character length below which a query is weak.
	WeakMinLength int
	// LexicalLimit is the max number of keyword search results requested.
	LexicalLimit int
	// SemanticLimit is the max number of semantic search results requested.
	SemanticLimit int
	// ScoreThreshold is the minimum lexical score to keep a candidate.
	ScoreThreshold float64
	// DistanceThreshold is the maximum semantic distance to keep a candidate.
	DistanceThreshold float64
}

// DefaultConfig returns the canonical retrieval parameters.
func DefaultConfig() Config {
	return Config{
		WeakMinTokens:     4,
		WeakMinLength:     30,
		LexicalLimit:      8,
		SemanticLimit:     5,
		ScoreThreshold:    0.4,
		DistanceThreshold: 0.45,
	}
}
