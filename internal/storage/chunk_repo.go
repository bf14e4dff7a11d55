package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chunk_store.go -package=mocks contexta/internal/storage ChunkStore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

const (
	keywordsSep  = ", "
	questionsSep = "\n"
)

// ChunkStore defines the interface for context chunk storage operations.
type ChunkStore interface {
	// InsertBatch inserts chunks in a single transaction. Chunk IDs must be
	// set (UUID) before calling. Returns the number inserted.
	InsertBatch(ctx context.Context, chunks []*ChunkRecord) (int, error)
	// GetByID gets a chunk by its ID. Returns ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*ChunkRecord, error)
	// DeleteBySourceType deletes all chunks of the given source type and
	// returns the number deleted.
	DeleteBySourceType(ctx context.Context, sourceType string) (int64, error)
	// Search performs a BM25 full-text search over content, keywords and
	// typical questions, with keywords boosted 2x. Results are ordered by
	// descending score.
	Search(ctx context.Context, query string, limit int) ([]ChunkHit, error)
}

// ChunkRepo provides methods for chunk operations backed by SQLite.
// It implements the ChunkStore interface.
type ChunkRepo struct {
	db *sql.DB
}

// NewChunkRepo creates a new ChunkRepo.
func NewChunkRepo(db *sql.DB) *ChunkRepo {
	return &ChunkRepo{db: db}
}

// InsertBatch inserts chunks in a single transaction.
func (r *ChunkRepo) InsertBatch(ctx context.Context, chunks []*ChunkRecord) (int, error) {
	if len(chunks) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO context_chunks (id, source_type, content, page_number, keywords, typical_questions)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, chunk := range chunks {
		_, err := stmt.ExecContext(ctx,
			chunk.ID,
			chunk.SourceType,
			chunk.Content,
			chunk.PageNumber,
			strings.Join(chunk.Keywords, keywordsSep),
			strings.Join(chunk.TypicalQuestions, questionsSep),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert chunk %s: %w", chunk.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit chunk batch: %w", err)
	}

	return len(chunks), nil
}

// GetByID gets a chunk by its ID. Returns ErrNotFound if not found.
func (r *ChunkRepo) GetByID(ctx context.Context, id string) (*ChunkRecord, error) {
	var chunk ChunkRecord
	var keywords, questions string

	err := r.db.QueryRowContext(ctx,
		`SELECT id, source_type, content, page_number, keywords, typical_questions, created_at
		 FROM context_chunks WHERE id = ?`,
		id,
	).Scan(&chunk.ID, &chunk.SourceType, &chunk.Content, &chunk.PageNumber, &keywords, &questions, &chunk.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query chunk: %w", err)
	}

	chunk.Keywords = splitList(keywords, keywordsSep)
	chunk.TypicalQuestions = splitList(questions, questionsSep)
	return &chunk, nil
}

// DeleteBySourceType deletes all chunks of the given source type.
func (r *ChunkRepo) DeleteBySourceType(ctx context.Context, sourceType string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM context_chunks WHERE source_type = ?",
		sourceType,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete chunks by source type: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return deleted, nil
}

// Search performs a BM25 full-text search. Column weights boost keyword
// matches 2x over content and typical questions. SQLite's bm25() returns
// smaller (more negative) values for better matches, so the score exposed
// to callers is its negation: higher means more relevant.
func (r *ChunkRepo) Search(ctx context.Context, query string, limit int) ([]ChunkHit, error) {
	match := buildMatchQuery(query)
	if match == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, c.source_type, c.content, c.page_number, c.keywords, c.typical_questions, c.created_at,
		        bm25(context_chunks_fts, 1.0, 2.0, 1.0) AS rank
		 FROM context_chunks_fts f
		 JOIN context_chunks c ON c.rowid = f.rowid
		 WHERE context_chunks_fts MATCH ?
		 ORDER BY rank
		 LIMIT ?`,
		match, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to run keyword search: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var hits []ChunkHit
	for rows.Next() {
		var hit ChunkHit
		var keywords, questions string
		var rank float64
		if err := rows.Scan(&hit.ID, &hit.SourceType, &hit.Content, &hit.PageNumber,
			&keywords, &questions, &hit.CreatedAt, &rank); err != nil {
			return nil, fmt.Errorf("failed to scan search hit: %w", err)
		}
		hit.Keywords = splitList(keywords, keywordsSep)
		hit.TypicalQuestions = splitList(questions, questionsSep)
		hit.Score = -rank
		hits = append(hits, hit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return hits, nil
}

// buildMatchQuery turns free text into a safe FTS5 match expression:
// each token is double-quoted (stripping embedded quotes) and tokens are
// OR-ed, so user punctuation can never be parsed as FTS5 syntax.
func buildMatchQuery(query string) string {
	var terms []string
	for _, tok := range strings.Fields(query) {
		tok = strings.ReplaceAll(tok, `"`, "")
		tok = strings.Trim(tok, ".,:;!?()[]{}")
		if tok == "" {
			continue
		}
		terms = append(terms, `"`+tok+`"`)
	}
	return strings.Join(terms, " OR ")
}

func splitList(joined, sep string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
