// Package store is the SQLite access layer for the word-by-word
// database. It wraps a single database/sql connection for the lifetime
// of one pipeline run.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/quranwbw/roots/pkg/types"
)

// Store holds the open database connection for one pipeline run.
// Every pipeline opens a Store at startup and defers Close, including
// early exits such as an interactive quit.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, types.ErrDBPathEmpty
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	return &Store{db: db}, nil
}

// Close releases the database connection. Close is idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Begin starts an update session. All writes in a session commit
// together; commit granularity is one commit per run.
func (s *Store) Begin() (*Session, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin session: %w", err)
	}
	return &Session{tx: tx}, nil
}
