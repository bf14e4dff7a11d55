package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_context_builder.go -package=mocks contexta/internal/service ContextBuilder
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_completer.go -package=mocks contexta/internal/service Completer
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_service.go -package=mocks -mock_names=ChatService=MockChatService contexta/internal/service ChatService

import (
	"context"
	"fmt"
	"strings"

	"contexta/internal/contextutil"
	"contexta/internal/llm"
	"contexta/internal/storage"
)

const basePrompt = `You are a helpful assistant that prefers factual, grounded answers.

Rules:
- If relevant context is provided, you MUST base your answer strictly on that context.
- If the context clearly answers the question, do not add extra information.
- If the context does NOT contain the answer:
  - You MAY respond conversationally
  - Do NOT invent facts
  - Keep the response general, helpful, or clarifying
- If the user asks about something unrelated to any context, respond naturally as a chatbot.
- Never share considerations outside of the provided context.
- Keep responses concise and clear.`

const noContextPrompt = `No relevant context was found. Do not answer the user's question. Keep the conversation flowing by asking the user more questions until the conversation reaches topics covered by the available context.`

const contextPromptPrefix = "Use the following information to answer the user's question.\n\n"

// priorUserTurns is how many earlier user messages join the current one
// to form the retrieval query.
const priorUserTurns = 2

// ContextBuilder produces grounding context for a retrieval query.
// An empty string means nothing relevant was found.
type ContextBuilder interface {
	BuildContext(ctx context.Context, query string) (string, error)
}

// Completer generates an assistant reply for a full conversation.
// This interface is defined from the service layer's perspective (consumer-first).
type Completer interface {
	ChatWithMessages(ctx context.Context, messages []llm.Message, params llm.ChatParams) (string, error)
}

// TurnResult is the outcome of one processed chat turn.
type TurnResult struct {
	SessionID        string
	UserMessage      string
	BotReply         string
	PreviousMessages []llm.Message
}

// ChatService processes chat turns against the retrieval pipeline.
type ChatService interface {
	// ProcessTurn persists the user message, retrieves grounding context,
	// generates a reply, and persists it.
	ProcessTurn(ctx context.Context, sessionID, text string) (TurnResult, error)
}

// chatService implements ChatService.
type chatService struct {
	messages     storage.ChatStore
	contexts     ContextBuilder
	completer    Completer
	historyLimit int
}

// NewChatService creates a ChatService. historyLimit caps how much
// session history feeds the conversation, the newest messages first.
func NewChatService(messages storage.ChatStore, contexts ContextBuilder, completer Completer, historyLimit int) ChatService {
	return &chatService{
		messages:     messages,
		contexts:     contexts,
		completer:    completer,
		historyLimit: historyLimit,
	}
}

// ProcessTurn runs one full chat turn. The user message is persisted
// before anything can fail so that history stays truthful even when
// retrieval or completion errors out. A failure to persist the reply is
// logged but does not lose the reply.
func (s *chatService) ProcessTurn(ctx context.Context, sessionID, text string) (TurnResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if strings.TrimSpace(sessionID) == "" {
		return TurnResult{}, &ValidationError{Field: "session_id", Message: "cannot be empty"}
	}
	if strings.TrimSpace(text) == "" {
		logger.WarnContext(ctx, "empty message in chat turn", "session_id", sessionID)
		return TurnResult{}, &ValidationError{Field: "message", Message: "cannot be empty"}
	}

	if err := s.messages.SaveMessage(ctx, sessionID, storage.RoleUser, text); err != nil {
		return TurnResult{}, WrapError(err, "failed to save user message")
	}

	history, err := s.messages.ListBySession(ctx, sessionID, s.historyLimit)
	if err != nil {
		return TurnResult{}, WrapError(err, "failed to load session history")
	}

	query := buildRetrievalQuery(text, history)
	grounding, err := s.contexts.BuildContext(ctx, query)
	if err != nil {
		return TurnResult{}, WrapError(err, "failed to build context")
	}

	conversation := make([]llm.Message, 0, len(history)+2)
	conversation = append(conversation, llm.Message{Role: storage.RoleSystem, Content: basePrompt})
	if grounding != "" {
		conversation = append(conversation, llm.Message{
			Role:    storage.RoleSystem,
			Content: contextPromptPrefix + grounding,
		})
	} else {
		logger.InfoContext(ctx, "no grounding context for turn", "session_id", sessionID)
		conversation = append(conversation, llm.Message{Role: storage.RoleSystem, Content: noContextPrompt})
	}
	historyMessages := toLLMMessages(history)
	conversation = append(conversation, historyMessages...)

	reply, err := s.completer.ChatWithMessages(ctx, conversation, llm.ChatParams{Temperature: 0.7})
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate reply", "error", err, "session_id", sessionID)
		return TurnResult{}, fmt.Errorf("failed to generate reply: %w: %w", ErrExternalService, err)
	}

	if err := s.messages.SaveMessage(ctx, sessionID, storage.RoleAssistant, reply); err != nil {
		logger.ErrorContext(ctx, "failed to save assistant reply", "error", err, "session_id", sessionID)
	}

	logger.InfoContext(ctx, "chat turn processed",
		"session_id", sessionID,
		"history_length", len(history),
		"context_found", grounding != "",
	)

	return TurnResult{
		SessionID:        sessionID,
		UserMessage:      text,
		BotReply:         reply,
		PreviousMessages: append(historyMessages, llm.Message{Role: storage.RoleAssistant, Content: reply}),
	}, nil
}

// buildRetrievalQuery joins the current message with the most recent
// prior user turns, newest first. history includes the current message
// as its last element.
func buildRetrievalQuery(text string, history []storage.MessageRecord) string {
	parts := []string{text}
	found := 0
	for i := len(history) - 2; i >= 0 && found < priorUserTurns; i-- {
		if history[i].Role != storage.RoleUser {
			continue
		}
		parts = append(parts, history[i].Content)
		found++
	}
	return strings.Join(parts, "\n")
}

func toLLMMessages(records []storage.MessageRecord) []llm.Message {
	messages := make([]llm.Message, len(records))
	for i, rec := range records {
		messages[i] = llm.Message{Role: rec.Role, Content: rec.Content}
	}
	return messages
}
