package handlers

import (
	"encoding/json"
	"net/http"

	"contexta/internal/contextutil"
	"contexta/internal/llm"
	"contexta/internal/service"
)

// ChatHandler handles HTTP requests for chat turns.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest represents the HTTP request payload for a chat turn.
type ChatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// ChatResponse represents the HTTP response payload for a chat turn.
type ChatResponse struct {
	SessionID        string        `json:"sessionId"`
	UserMessage      string        `json:"userMessage"`
	BotReply         string        `json:"botReply"`
	PreviousMessages []llm.Message `json:"previousMessages"`
}

// ServeHTTP handles POST /api/chat.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.chatService.ProcessTurn(ctx, req.SessionID, req.Message)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to process chat turn")
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		SessionID:        result.SessionID,
		UserMessage:      result.UserMessage,
		BotReply:         result.BotReply,
		PreviousMessages: result.PreviousMessages,
	})
}
