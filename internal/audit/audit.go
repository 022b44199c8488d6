package audit

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite" // CGO-free driver
)

// DB is the local audit trail of every store/calendar mutation the bot
// attempted. It is observability only; the worksheet stays the source of
// truth.
type DB struct {
	*sql.DB
}

// Entry is one audited adapter call.
type Entry struct {
	ID        int64
	Action    string // append_record, delete_records, create_*_event, delete_events
	Date      string
	Officer   string
	Detail    string
	Actor     string
	OK        bool
	CreatedAt string
}

// NewSQLite opens (and migrates) the audit database.
func NewSQLite(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	// Single connection avoids SQLite concurrent-write conflicts.
	db.SetMaxOpenConns(1)

	instance := &DB{db}
	if err := instance.migrate(); err != nil {
		return nil, err
	}
	return instance, nil
}

func (db *DB) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS audit_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		action TEXT NOT NULL,
		date TEXT,
		officer TEXT,
		detail TEXT,
		actor TEXT,
		ok INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to run migration: %w", err)
	}
	log.Println("[Audit] table initialized successfully.")
	return nil
}

// Record implements dialog.AuditSink. Failures are logged only; auditing
// must never block or fail the conversation.
func (db *DB) Record(action, date, officer, detail, actor string, ok bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := `INSERT INTO audit_logs (action, date, officer, detail, actor, ok) VALUES (?, ?, ?, ?, ?, ?)`
	okInt := 0
	if ok {
		okInt = 1
	}
	if _, err := db.ExecContext(ctx, query, action, date, officer, detail, actor, okInt); err != nil {
		log.Printf("⚠️ [Audit] insert failed: %v", err)
	}
}

// Recent returns the latest entries, newest first.
func (db *DB) Recent(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT id, action, date, officer, detail, actor, ok, created_at
		FROM audit_logs ORDER BY id DESC LIMIT ?`
	rows, err := db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var okInt int
		if err := rows.Scan(&e.ID, &e.Action, &e.Date, &e.Officer, &e.Detail, &e.Actor, &okInt, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.OK = okInt != 0
		out = append(out, e)
	}
	return out, rows.Err()
}
