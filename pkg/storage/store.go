// Package storage persists submitted feedback in a local SQLite database.
package storage

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// Feedback is one persisted rating/comment pair.
type Feedback struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// Store wraps the feedback database.
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) the feedback database inside dir.
func NewStore(dir string) (*Store, error) {
	dbPath := filepath.Join(dir, "feedback.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 30000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return nil, fmt.Errorf("applying pragma %q: %w", pragma, err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS feedback (
			id TEXT PRIMARY KEY,
			rating INTEGER NOT NULL,
			comment TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("creating feedback table: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts a new feedback record and returns it with its generated ID.
func (s *Store) Save(rating int, comment string) (Feedback, error) {
	fb := Feedback{
		ID:        uuid.NewString(),
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec(
		`INSERT INTO feedback (id, rating, comment, created_at) VALUES (?, ?, ?, ?)`,
		fb.ID, fb.Rating, fb.Comment, fb.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Feedback{}, fmt.Errorf("inserting feedback: %w", err)
	}
	return fb, nil
}

// List returns the newest feedback first, up to limit (0 means no limit).
func (s *Store) List(limit int) ([]Feedback, error) {
	query := `SELECT id, rating, comment, created_at FROM feedback ORDER BY created_at DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying feedback: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []Feedback
	for rows.Next() {
		var fb Feedback
		var created string
		if err := rows.Scan(&fb.ID, &fb.Rating, &fb.Comment, &created); err != nil {
			return nil, fmt.Errorf("scanning feedback row: %w", err)
		}
		fb.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at %q: %w", created, err)
		}
		out = append(out, fb)
	}
	return out, rows.Err()
}

// Count returns the number of stored feedback records.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM feedback`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting feedback: %w", err)
	}
	return n, nil
}
