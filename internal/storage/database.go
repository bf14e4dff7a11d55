package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// New opens a SQLite database connection at the given path.
// It enables foreign keys and sets connection pool settings. The handle is
// created once at process start and closed at shutdown; nothing re-creates
// it mid-request.
func New(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys (disabled by default in SQLite)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
//
// The schema requires the FTS5 extension, which mattn/go-sqlite3 only
// compiles in under the sqlite_fts5 build tag. Build and test with
// -tags sqlite_fts5.
//
// context_chunks_fts is an external-content FTS5 table over content,
// keywords and typical_questions; the triggers keep it in sync with
// context_chunks (chunks are write-once, so only insert and delete need
// mirroring).
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS context_chunks (
			id TEXT PRIMARY KEY,
			source_type TEXT NOT NULL,
			content TEXT NOT NULL CHECK (content <> ''),
			page_number INTEGER NOT NULL DEFAULT 0,
			keywords TEXT NOT NULL DEFAULT '',
			typical_questions TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_context_chunks_source_type
			ON context_chunks(source_type);`,
		`CREATE VIRTUAL TABLE IF NOT EXISTS context_chunks_fts USING fts5(
			content,
			keywords,
			typical_questions,
			content='context_chunks',
			content_rowid='rowid'
		);`,
		`CREATE TRIGGER IF NOT EXISTS context_chunks_fts_insert
			AFTER INSERT ON context_chunks BEGIN
			INSERT INTO context_chunks_fts(rowid, content, keywords, typical_questions)
			VALUES (new.rowid, new.content, new.keywords, new.typical_questions);
		END;`,
		`CREATE TRIGGER IF NOT EXISTS context_chunks_fts_delete
			AFTER DELETE ON context_chunks BEGIN
			INSERT INTO context_chunks_fts(context_chunks_fts, rowid, content, keywords, typical_questions)
			VALUES ('delete', old.rowid, old.content, old.keywords, old.typical_questions);
		END;`,
		`CREATE TABLE IF NOT EXISTS chat_messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_chat_messages_session
			ON chat_messages(session_id, id);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return migrateError(err)
		}
	}

	return nil
}

// migrateError makes the missing-FTS5 failure actionable. A binary built
// without the sqlite_fts5 tag fails the virtual table statement with
// "no such module: fts5".
func migrateError(err error) error {
	if strings.Contains(err.Error(), "no such module: fts5") {
		return fmt.Errorf("%w (rebuild with -tags sqlite_fts5)", err)
	}
	return err
}
