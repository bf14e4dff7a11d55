package handlers

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"contexta/internal/contextutil"
)

// maxUploadBytes caps ingestion uploads at 32 MiB.
const maxUploadBytes = 32 << 20

// Ingestor runs document and image ingestion.
type Ingestor interface {
	IngestDocument(ctx context.Context, path string) (int, error)
	IngestImage(ctx context.Context, path string) (int, error)
}

// IngestHandler handles multipart uploads into the context stores.
type IngestHandler struct {
	pipeline Ingestor
}

// NewIngestHandler creates a new IngestHandler.
func NewIngestHandler(pipeline Ingestor) *IngestHandler {
	return &IngestHandler{pipeline: pipeline}
}

// IngestResponse represents the outcome of one ingestion request.
type IngestResponse struct {
	ChunksCreated int    `json:"chunks_created"`
	Status        string `json:"status"`
}

// HandleDocument handles POST /api/ingest/document.
func (h *IngestHandler) HandleDocument(w http.ResponseWriter, r *http.Request) {
	h.handleUpload(w, r, h.pipeline.IngestDocument)
}

// HandleImage handles POST /api/ingest/image.
func (h *IngestHandler) HandleImage(w http.ResponseWriter, r *http.Request) {
	h.handleUpload(w, r, h.pipeline.IngestImage)
}

// handleUpload saves the uploaded file to a temp path, runs ingest on it,
// and always removes the temp file. Zero chunks is a valid outcome: it
// means the upload carried no ingestable text.
func (h *IngestHandler) handleUpload(w http.ResponseWriter, r *http.Request, ingest func(context.Context, string) (int, error)) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		logger.WarnContext(ctx, "missing file in upload", "error", err)
		writeError(w, http.StatusBadRequest, "Missing file upload")
		return
	}
	defer file.Close()

	// Keep the original extension so the extractor can dispatch on it.
	tmp, err := os.CreateTemp("", "ingest-*"+filepath.Ext(header.Filename))
	if err != nil {
		logger.ErrorContext(ctx, "failed to create temp file", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}
	tmpPath := tmp.Name()
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			logger.WarnContext(ctx, "failed to remove temp file", "path", tmpPath, "error", err)
		}
	}()

	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		logger.ErrorContext(ctx, "failed to write upload", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}
	if err := tmp.Close(); err != nil {
		logger.ErrorContext(ctx, "failed to close temp file", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}

	count, err := ingest(ctx, tmpPath)
	if err != nil {
		logger.ErrorContext(ctx, "ingestion failed", "filename", header.Filename, "error", err)
		writeError(w, http.StatusUnprocessableEntity, "Ingestion failed: "+err.Error())
		return
	}

	status := "ok"
	if count == 0 {
		status = "no ingestable text"
	}
	writeJSON(w, http.StatusOK, IngestResponse{ChunksCreated: count, Status: status})
}
