package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"contexta/internal/contextutil"
	"contexta/internal/storage"
)

// SourceDeleter removes ingested chunks of one source type from both stores.
type SourceDeleter interface {
	DeleteSource(ctx context.Context, sourceType string) (int64, error)
}

// ContextHandler handles bulk deletion of ingested context.
type ContextHandler struct {
	deleter SourceDeleter
}

// NewContextHandler creates a new ContextHandler.
func NewContextHandler(deleter SourceDeleter) *ContextHandler {
	return &ContextHandler{deleter: deleter}
}

// DeleteResponse reports how many chunks a bulk delete removed.
type DeleteResponse struct {
	SourceType string `json:"source_type"`
	Deleted    int64  `json:"deleted"`
}

// ServeHTTP handles DELETE /api/context/{sourceType}.
func (h *ContextHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	sourceType := chi.URLParam(r, "sourceType")
	switch sourceType {
	case storage.SourceTypeDocument, storage.SourceTypeImage, storage.SourceTypeVideo:
	default:
		writeError(w, http.StatusBadRequest, "Unknown source type: "+sourceType)
		return
	}

	deleted, err := h.deleter.DeleteSource(ctx, sourceType)
	if err != nil {
		logger.ErrorContext(ctx, "context delete failed", "source_type", sourceType, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete context")
		return
	}

	writeJSON(w, http.StatusOK, DeleteResponse{SourceType: sourceType, Deleted: deleted})
}
