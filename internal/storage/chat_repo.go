package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_store.go -package=mocks contexta/internal/storage ChatStore

import (
	"context"
	"database/sql"
	"fmt"
)

// ChatStore defines the interface for chat history operations.
// History is append-only; ordering within a session follows insertion order.
type ChatStore interface {
	// SaveMessage appends one message to a session's history.
	SaveMessage(ctx context.Context, sessionID, role, content string) error
	// ListBySession returns the most recent limit messages of a session in
	// chronological order. Returns an empty slice for an unknown session.
	ListBySession(ctx context.Context, sessionID string, limit int) ([]MessageRecord, error)
}

// ChatRepo provides chat history operations backed by SQLite.
// It implements the ChatStore interface.
type ChatRepo struct {
	db *sql.DB
}

// NewChatRepo creates a new ChatRepo.
func NewChatRepo(db *sql.DB) *ChatRepo {
	return &ChatRepo{db: db}
}

// SaveMessage appends one message to a session's history.
func (r *ChatRepo) SaveMessage(ctx context.Context, sessionID, role, content string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO chat_messages (session_id, role, content) VALUES (?, ?, ?)",
		sessionID, role, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}
	return nil
}

// ListBySession returns the most recent limit messages in chronological
// order. The inner query selects the newest messages, the outer one
// restores insertion order.
func (r *ChatRepo) ListBySession(ctx context.Context, sessionID string, limit int) ([]MessageRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, role, content, created_at FROM (
			SELECT id, session_id, role, content, created_at
			FROM chat_messages
			WHERE session_id = ?
			ORDER BY id DESC
			LIMIT ?
		) ORDER BY id ASC`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat messages: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	messages := make([]MessageRecord, 0)
	for rows.Next() {
		var msg MessageRecord
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return messages, nil
}
