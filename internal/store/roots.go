package store

import (
	"database/sql"
	"fmt"

	"github.com/quranwbw/roots/pkg/types"
)

// UpsertRootMeaning inserts or replaces the root_meanings row keyed on
// m.Root. Re-running with identical data leaves a single row per root.
func (s *Store) UpsertRootMeaning(m types.RootMeaning) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}
	if err := m.Validate(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO root_meanings (root, primary_meaning, extended_meaning, quran_usage, notes)
		VALUES (?, ?, ?, ?, ?)`,
		m.Root, m.PrimaryMeaning, m.ExtendedMeaning, m.QuranUsage, m.Notes,
	)
	if err != nil {
		return fmt.Errorf("upsert root meaning %s: %w", m.Root, err)
	}
	return nil
}

// CountRootMeanings returns the number of rows in root_meanings.
func (s *Store) CountRootMeanings() (int, error) {
	if s.db == nil {
		return 0, types.ErrStoreClosed
	}

	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM root_meanings").Scan(&n); err != nil {
		return 0, fmt.Errorf("count root meanings: %w", err)
	}
	return n, nil
}

// GetRootMeaning returns the root_meanings row for root, or nil when
// absent.
func (s *Store) GetRootMeaning(root string) (*types.RootMeaning, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}

	var m types.RootMeaning
	err := s.db.QueryRow(`
		SELECT root, primary_meaning, extended_meaning, quran_usage, notes
		FROM root_meanings WHERE root = ?`, root,
	).Scan(&m.Root, &m.PrimaryMeaning, &m.ExtendedMeaning, &m.QuranUsage, &m.Notes)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get root meaning %s: %w", root, err)
	}
	return &m, nil
}
