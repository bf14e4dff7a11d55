package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"contexta/internal/contextutil"
	"contexta/internal/service"
)

// WSHandler serves the websocket chat endpoint. Each connection is bound
// to one session; incoming frames are raw user messages, outgoing frames
// are JSON envelopes with a "type" of typing, message, or error.
type WSHandler struct {
	chatService service.ChatService
	upgrader    websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(chatService service.ChatService) *WSHandler {
	return &WSHandler{
		chatService: chatService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The HTTP layer already handles CORS; the demo page and any
			// browser client may connect from another origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

type wsEnvelope struct {
	Type    string `json:"type"`
	Value   *bool  `json:"value,omitempty"`
	Payload any    `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
}

func typingEnvelope(on bool) wsEnvelope {
	return wsEnvelope{Type: "typing", Value: &on}
}

// ServeHTTP handles GET /ws/chat/{sessionID}.
func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	sessionID := chi.URLParam(r, "sessionID")
	if strings.TrimSpace(sessionID) == "" {
		writeError(w, http.StatusBadRequest, "Missing session ID")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.WarnContext(ctx, "websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	logger.InfoContext(ctx, "websocket connected", "session_id", sessionID)

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.WarnContext(ctx, "websocket read failed", "session_id", sessionID, "error", err)
			} else {
				logger.InfoContext(ctx, "websocket disconnected", "session_id", sessionID)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		if err := conn.WriteJSON(typingEnvelope(true)); err != nil {
			logger.WarnContext(ctx, "websocket write failed", "session_id", sessionID, "error", err)
			return
		}

		result, turnErr := h.chatService.ProcessTurn(ctx, sessionID, string(data))

		if err := conn.WriteJSON(typingEnvelope(false)); err != nil {
			logger.WarnContext(ctx, "websocket write failed", "session_id", sessionID, "error", err)
			return
		}

		if turnErr != nil {
			logger.ErrorContext(ctx, "chat turn failed", "session_id", sessionID, "error", turnErr)
			if err := conn.WriteJSON(wsEnvelope{Type: "error", Error: "Failed to process message"}); err != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(wsEnvelope{
			Type: "message",
			Payload: ChatResponse{
				SessionID:        result.SessionID,
				UserMessage:      result.UserMessage,
				BotReply:         result.BotReply,
				PreviousMessages: result.PreviousMessages,
			},
		}); err != nil {
			logger.WarnContext(ctx, "websocket write failed", "session_id", sessionID, "error", err)
			return
		}
	}
}
