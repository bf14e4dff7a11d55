package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"

	"contexta/internal/llm"
)

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_completion.go -package=mocks contexta/internal/ingestion CompletionClient

// CompletionClient is the slice of the LLM client the keyword generator needs.
type CompletionClient interface {
	ChatWithMessages(ctx context.Context, messages []llm.Message, params llm.ChatParams) (string, error)
}

const keywordPromptTemplate = `Return ONLY valid JSON.

Format:
{
  "keywords": ["string"],
  "questions": ["string"]
}

Rules:
- No markdown
- No explanation
- No trailing text

Text:
%s`

// jsonObject matches the outermost {...} span in free text, tolerating
// noise the model wraps around the payload.
var jsonObject = regexp.MustCompile(`\{[\s\S]*\}`)

// KeywordGenerator asks an LLM for retrieval keywords and typical
// questions describing a piece of text. Strictly best-effort: any failure
// (transport, malformed output, missing JSON) yields empty lists so that
// ingestion proceeds with whatever chunk content is available.
type KeywordGenerator struct {
	client CompletionClient
	logger *slog.Logger
}

// NewKeywordGenerator creates a keyword generator backed by client.
func NewKeywordGenerator(client CompletionClient) *KeywordGenerator {
	return &KeywordGenerator{
		client: client,
		logger: slog.Default(),
	}
}

type keywordPayload struct {
	Keywords  []string `json:"keywords"`
	Questions []string `json:"questions"`
}

// Generate returns keywords and typical questions for text. Never returns
// an error; failures degrade to empty lists.
func (g *KeywordGenerator) Generate(ctx context.Context, text string) (keywords, questions []string) {
	messages := []llm.Message{
		{Role: "system", Content: "You are a strict JSON generator."},
		{Role: "user", Content: fmt.Sprintf(keywordPromptTemplate, text)},
	}

	raw, err := g.client.ChatWithMessages(ctx, messages, llm.ChatParams{
		Temperature: 0.2,
		MaxTokens:   300,
	})
	if err != nil {
		g.logger.WarnContext(ctx, "keyword generation failed", "error", err)
		return nil, nil
	}

	return g.parse(ctx, raw)
}

// parse extracts the JSON object from raw model output. Missing or
// unparseable JSON yields empty lists.
func (g *KeywordGenerator) parse(ctx context.Context, raw string) (keywords, questions []string) {
	match := jsonObject.FindString(raw)
	if match == "" {
		g.logger.WarnContext(ctx, "no JSON object in keyword generation output")
		return nil, nil
	}

	var payload keywordPayload
	if err := json.Unmarshal([]byte(match), &payload); err != nil {
		g.logger.WarnContext(ctx, "invalid JSON from keyword generation", "error", err)
		return nil, nil
	}

	return payload.Keywords, payload.Questions
}
