package sink

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/teemow/mailsift/internal/pipeline"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    message_id TEXT NOT NULL,
    subject TEXT,
    date TEXT,
    attachment_name TEXT,
    gmail_query TEXT,
    target_mimes TEXT,
    content_text TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_records_message_id ON records(message_id);
`

// SQLite persists records to a local SQLite database. Useful when the same
// mailbox is swept repeatedly and the results need to be queryable.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at dbPath and ensures the
// records table exists.
func OpenSQLite(dbPath string) (*SQLite, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Push inserts one record.
func (s *SQLite) Push(rec *pipeline.Record) error {
	_, err := s.db.Exec(`
		INSERT INTO records (message_id, subject, date, attachment_name, gmail_query, target_mimes, content_text)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.MessageID, rec.Subject, rec.Date, rec.AttachmentName, rec.QueryUsed,
		strings.Join(rec.TargetMimes, ","), rec.ContentText)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

// Count returns the number of stored records.
func (s *SQLite) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return n, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
