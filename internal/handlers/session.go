package handlers

import (
	"net/http"

	"github.com/google/uuid"
)

// SessionHandler mints new chat session identifiers.
type SessionHandler struct{}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// SessionResponse represents a newly minted session.
type SessionResponse struct {
	SessionID string `json:"sessionId"`
}

// ServeHTTP handles GET /api/session.
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SessionResponse{SessionID: uuid.NewString()})
}
