package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"marketscout/models"
)

// SQLiteStore persists annotated listings to a local SQLite file. It is
// append-only from the application's perspective: records are never updated
// or deleted.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the SQLite file at the given
// path and ensures the schema exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}

	st := &SQLiteStore{db: db}
	if err := st.EnsureSchema(); err != nil {
		return nil, fmt.Errorf("sqlite: migrate: %w", err)
	}

	return st, nil
}

// EnsureSchema creates the listings table if it does not exist. Safe to run
// on every session start.
func (s *SQLiteStore) EnsureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS listings (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			platform    TEXT NOT NULL,
			title       TEXT NOT NULL,
			price       TEXT,
			link        TEXT NOT NULL,
			description TEXT,
			notes       TEXT
		)
	`)
	return err
}

// BeginSession opens a write transaction covering one interactive session.
func (s *SQLiteStore) BeginSession() (*Session, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("sqlite: begin: %w", err)
	}
	return &Session{tx: tx}, nil
}

// FetchAll retrieves every stored listing in insertion order.
func (s *SQLiteStore) FetchAll() ([]*models.SavedListing, error) {
	rows, err := s.db.Query(`
		SELECT id, platform, title, price, link, description, notes
		FROM listings
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: fetch all: %w", err)
	}
	defer rows.Close()

	var listings []*models.SavedListing
	for rows.Next() {
		l := &models.SavedListing{}
		if err := rows.Scan(
			&l.ID, &l.Platform, &l.Title, &l.Price, &l.Link, &l.Description, &l.Notes,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scan row: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Session accumulates saves inside a single transaction. Close commits when
// every save succeeded and rolls back otherwise, so a partial annotation run
// never half-commits.
type Session struct {
	tx     *sql.Tx
	failed bool
}

// Save appends one annotated listing to the session transaction. A failed
// save marks the whole session for rollback.
func (s *Session) Save(l *models.SavedListing) error {
	_, err := s.tx.Exec(`
		INSERT INTO listings (platform, title, price, link, description, notes)
		VALUES (?, ?, ?, ?, ?, ?)
	`, l.Platform, l.Title, l.Price, l.Link, l.Description, l.Notes)
	if err != nil {
		s.failed = true
		return fmt.Errorf("sqlite: insert listing: %w", err)
	}
	return nil
}

// Abort marks the session for rollback regardless of save outcomes.
func (s *Session) Abort() {
	s.failed = true
}

// Close ends the session, committing on clean exit and rolling back when a
// save failed or Abort was called.
func (s *Session) Close() error {
	if s.failed {
		if err := s.tx.Rollback(); err != nil {
			return fmt.Errorf("sqlite: rollback: %w", err)
		}
		return nil
	}
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	return nil
}
