package store

import (
	"database/sql"
	"fmt"
)

// Session wraps a transaction spanning one pipeline run. Updates
// accumulate and become visible together on Commit; a session ended by
// an interactive quit still commits what was applied before it.
type Session struct {
	tx *sql.Tx
}

// AssignEtymology writes etymology to every row whose arabic_text
// matches. Arabic surface forms repeat across verses, so a single
// assignment may change many rows. Returns the number of rows changed.
func (se *Session) AssignEtymology(arabicText, etymology string) (int64, error) {
	res, err := se.tx.Exec(
		"UPDATE word_translations SET etymology = ? WHERE arabic_text = ?",
		etymology, arabicText,
	)
	if err != nil {
		return 0, fmt.Errorf("assign etymology for %s: %w", arabicText, err)
	}
	return res.RowsAffected()
}

// SetRootAt writes root to the single row at (sura, ayah,
// word_position). Returns false when no row exists at that coordinate.
func (se *Session) SetRootAt(sura, ayah, wordPosition int, root *string) (bool, error) {
	res, err := se.tx.Exec(
		"UPDATE word_translations SET etymology = ? WHERE sura = ? AND ayah = ? AND word_position = ?",
		root, sura, ayah, wordPosition,
	)
	if err != nil {
		return false, fmt.Errorf("set root at %d:%d:%d: %w", sura, ayah, wordPosition, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Commit commits the session.
func (se *Session) Commit() error {
	if err := se.tx.Commit(); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}
	return nil
}

// Rollback abandons the session. Safe to defer after Commit.
func (se *Session) Rollback() error {
	err := se.tx.Rollback()
	if err == sql.ErrTxDone {
		return nil
	}
	return err
}
