package store

import "fmt"

// DDL for the two tables. word_translations is normally created and
// populated by the corpus loader; the statement here backs test
// fixtures and empty databases. root_meanings is owned by this toolkit.
const (
	createWordTranslations = `CREATE TABLE IF NOT EXISTS word_translations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    sura INTEGER NOT NULL,
    ayah INTEGER NOT NULL,
    word_position INTEGER NOT NULL,
    arabic_text TEXT NOT NULL,
    translation TEXT,
    transliteration TEXT,
    etymology TEXT
);`

	createRootMeanings = `CREATE TABLE IF NOT EXISTS root_meanings (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    root TEXT NOT NULL UNIQUE,
    primary_meaning TEXT NOT NULL,
    extended_meaning TEXT,
    quran_usage TEXT,
    notes TEXT
);`
)

// EnsureWordsTable creates the word_translations table if it does not
// exist.
func (s *Store) EnsureWordsTable() error {
	if _, err := s.db.Exec(createWordTranslations); err != nil {
		return fmt.Errorf("create word_translations: %w", err)
	}
	return nil
}

// EnsureRootMeaningsTable creates the root_meanings table if it does
// not exist.
func (s *Store) EnsureRootMeaningsTable() error {
	if _, err := s.db.Exec(createRootMeanings); err != nil {
		return fmt.Errorf("create root_meanings: %w", err)
	}
	return nil
}
