package retrieval

import (
	"context"
	"log/slog"
	"strings"

	"contexta/internal/llm"
)

const expandSystemPrompt = "You rewrite search queries. Produce exactly one rewritten sentence " +
	"that preserves the meaning of the input query. Do not invent entities, facts, or topics that " +
	"are not in the query. Only add minimal connective wording to make the query a well-formed " +
	"sentence. Reply with the rewritten sentence only, no quotes, no explanation."

// Expander conservatively strengthens weak queries via a single LLM
// completion. Expansion is strictly best-effort: any failure falls back to
// the original query so retrieval is never blocked or corrupted by it.
type Expander struct {
	client CompletionClient
	logger *slog.Logger
}

// NewExpander creates a query expander backed by the given completion client.
func NewExpander(client CompletionClient) *Expander {
	return &Expander{
		client: client,
		logger: slog.Default(),
	}
}

// Expand returns a rewritten form of query, or query itself when the
// completion fails, times out, or yields empty output.
func (e *Expander) Expand(ctx context.Context, query string) string {
	messages := []llm.Message{
		{Role: "system", Content: expandSystemPrompt},
		{Role: "user", Content: query},
	}

	rewritten, err := e.client.ChatWithMessages(ctx, messages, llm.ChatParams{
		Temperature: 0.2,
		MaxTokens:   120,
	})
	if err != nil {
		e.logger.WarnContext(ctx, "query expansion failed, using original query", "error", err)
		return query
	}

	rewritten = strings.TrimSpace(rewritten)
	if rewritten == "" {
		e.logger.WarnContext(ctx, "query expansion returned empty output, using original query")
		return query
	}

	e.logger.DebugContext(ctx, "query expanded", "original", query, "expanded", rewritten)
	return rewritten
}
