// Package history keeps a local log of the Last.fm lookups made by the
// CLI. Only the request and its outcome are stored, never the response.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store manages the lookup history using SQLite
type Store struct {
	db *sql.DB
}

// Entry is one recorded lookup
type Entry struct {
	ID        int64
	Method    string
	Params    map[string]string
	Error     string // empty when the lookup succeeded
	Code      int    // Last.fm error code, 0 if none
	Duration  time.Duration
	Timestamp time.Time
}

// OK reports whether the lookup succeeded.
func (e Entry) OK() bool {
	return e.Error == ""
}

// Open opens (and creates if needed) a history store backed by SQLite
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection keeps :memory: databases consistent
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA journal_mode = WAL",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS lookups (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			method TEXT NOT NULL,
			params TEXT NOT NULL DEFAULT '{}',
			error TEXT,
			code INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			timestamp INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_lookups_timestamp ON lookups(timestamp);
	`

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record adds a lookup to the history. A zero Timestamp means now.
func (s *Store) Record(ctx context.Context, e Entry) (int64, error) {
	if e.Method == "" {
		return 0, fmt.Errorf("method is required")
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	params := e.Params
	if params == nil {
		params = map[string]string{}
	}
	encoded, err := json.Marshal(params)
	if err != nil {
		return 0, fmt.Errorf("failed to encode params: %w", err)
	}

	var errMsg sql.NullString
	if e.Error != "" {
		errMsg = sql.NullString{String: e.Error, Valid: true}
	}

	query := `
		INSERT INTO lookups (method, params, error, code, duration_ms, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		e.Method,
		string(encoded),
		errMsg,
		e.Code,
		e.Duration.Milliseconds(),
		e.Timestamp.Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert lookup: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get insert id: %w", err)
	}

	return id, nil
}

// Recent returns the most recent lookups, newest first.
// A limit <= 0 returns everything.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	query := `
		SELECT id, method, params, COALESCE(error, ''), code, duration_ms, timestamp
		FROM lookups
		ORDER BY timestamp DESC, id DESC
	`

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookups: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var params string
		var durationMs int64
		var timestampUnix int64

		err := rows.Scan(
			&e.ID,
			&e.Method,
			&params,
			&e.Error,
			&e.Code,
			&durationMs,
			&timestampUnix,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lookup: %w", err)
		}

		if err := json.Unmarshal([]byte(params), &e.Params); err != nil {
			return nil, fmt.Errorf("failed to decode params of lookup %d: %w", e.ID, err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.Timestamp = time.Unix(timestampUnix, 0)

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lookups: %w", err)
	}

	return entries, nil
}

// Count returns the number of recorded lookups
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM lookups").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count lookups: %w", err)
	}

	return count, nil
}

// Prune removes lookups older than maxAge and returns how many were removed
func (s *Store) Prune(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge).Unix()

	result, err := s.db.ExecContext(ctx, "DELETE FROM lookups WHERE timestamp < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune lookups: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return deleted, nil
}

// Clear removes every lookup and returns how many were removed
func (s *Store) Clear(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM lookups")
	if err != nil {
		return 0, fmt.Errorf("failed to clear lookups: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return deleted, nil
}
