package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Source types for context chunks.
const (
	SourceTypeDocument = "document"
	SourceTypeImage    = "image"
	SourceTypeVideo    = "video"
)

// Chat message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChunkRecord represents one ingested context chunk. Chunks are written
// once (to this store and the vector index in the same logical batch) and
// never mutated; the only deletion path is bulk delete by source type.
type ChunkRecord struct {
	ID               string // UUID (same as the vector store point ID)
	SourceType       string // document | image | video
	Content          string // never empty at persistence time
	PageNumber       int    // 0 means "not applicable"
	Keywords         []string
	TypicalQuestions []string
	CreatedAt        time.Time
}

// ChunkHit is a ChunkRecord plus its lexical relevance score
// (higher is more relevant).
type ChunkHit struct {
	ChunkRecord
	Score float64
}

// MessageRecord represents one persisted chat turn. Append-only.
type MessageRecord struct {
	ID        int64
	SessionID string
	Role      string
	Content   string
	CreatedAt time.Time
}
