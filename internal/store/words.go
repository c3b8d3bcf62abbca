package store

import (
	"context"
	"fmt"

	"github.com/quranwbw/roots/pkg/types"
)

// interactiveLimit caps how many words one interactive session offers.
const interactiveLimit = 100

// ApplyRootMappings writes each mapping's root to the row at its word
// coordinate, in one transaction committed at the end. Coordinates
// absent from the table are counted as notFound and leave the table
// unchanged.
func (s *Store) ApplyRootMappings(ctx context.Context, mappings []types.WordRoot) (updated, notFound int, err error) {
	if s.db == nil {
		return 0, 0, types.ErrStoreClosed
	}

	sess, err := s.Begin()
	if err != nil {
		return 0, 0, err
	}
	defer sess.Rollback()

	for _, m := range mappings {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}
		ok, err := sess.SetRootAt(m.Sura, m.Ayah, m.WordPosition, m.Root)
		if err != nil {
			return 0, 0, err
		}
		if ok {
			updated++
		} else {
			notFound++
		}
	}

	if err := sess.Commit(); err != nil {
		return 0, 0, err
	}
	return updated, notFound, nil
}

// BulkAssign applies every assignment in one transaction and returns
// the total number of rows changed across all of them.
func (s *Store) BulkAssign(entries []types.Assignment) (int64, error) {
	if s.db == nil {
		return 0, types.ErrStoreClosed
	}

	sess, err := s.Begin()
	if err != nil {
		return 0, err
	}
	defer sess.Rollback()

	var updated int64
	for _, e := range entries {
		n, err := sess.AssignEtymology(e.ArabicText, e.Etymology)
		if err != nil {
			return 0, err
		}
		updated += n
	}

	if err := sess.Commit(); err != nil {
		return 0, err
	}
	return updated, nil
}

// Percent returns part as a percentage of whole, with an empty table
// reading as 0% rather than dividing by zero.
func Percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}

// Coverage reports how many word rows exist and how many carry a
// non-empty etymology.
func (s *Store) Coverage() (types.Coverage, error) {
	if s.db == nil {
		return types.Coverage{}, types.ErrStoreClosed
	}

	var c types.Coverage
	if err := s.db.QueryRow("SELECT COUNT(*) FROM word_translations").Scan(&c.Total); err != nil {
		return types.Coverage{}, fmt.Errorf("count words: %w", err)
	}
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM word_translations WHERE etymology IS NOT NULL AND etymology != ''",
	).Scan(&c.WithRoot)
	if err != nil {
		return types.Coverage{}, fmt.Errorf("count words with root: %w", err)
	}
	return c, nil
}

// DistinctWords returns the distinct (arabic_text, translation,
// transliteration, etymology) tuples ordered by arabic_text. The tuple
// as a whole is the distinct key. NULL etymology comes back as the
// empty string.
func (s *Store) DistinctWords() ([]types.DistinctWord, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT DISTINCT arabic_text, COALESCE(translation, ''), COALESCE(transliteration, ''), COALESCE(etymology, '')
		FROM word_translations
		ORDER BY arabic_text`)
	if err != nil {
		return nil, fmt.Errorf("select distinct words: %w", err)
	}
	defer rows.Close()

	var words []types.DistinctWord
	for rows.Next() {
		var w types.DistinctWord
		if err := rows.Scan(&w.ArabicText, &w.Translation, &w.Transliteration, &w.Etymology); err != nil {
			return nil, fmt.Errorf("scan distinct word: %w", err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// WordsMissingEtymology returns up to interactiveLimit distinct
// (arabic_text, translation, transliteration) triples among rows whose
// etymology is NULL or empty, ordered by first row id.
func (s *Store) WordsMissingEtymology() ([]types.DistinctWord, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT arabic_text, COALESCE(translation, ''), COALESCE(transliteration, '')
		FROM word_translations
		WHERE etymology IS NULL OR etymology = ''
		GROUP BY arabic_text, translation, transliteration
		ORDER BY MIN(id)
		LIMIT ?`, interactiveLimit)
	if err != nil {
		return nil, fmt.Errorf("select words missing etymology: %w", err)
	}
	defer rows.Close()

	var words []types.DistinctWord
	for rows.Next() {
		var w types.DistinctWord
		if err := rows.Scan(&w.ArabicText, &w.Translation, &w.Transliteration); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// Stats reports the four etymology population counters.
func (s *Store) Stats() (types.Stats, error) {
	if s.db == nil {
		return types.Stats{}, types.ErrStoreClosed
	}

	const withEtymology = "etymology IS NOT NULL AND etymology != ''"

	var st types.Stats
	steps := []struct {
		query string
		dst   *int
	}{
		{"SELECT COUNT(*) FROM word_translations", &st.TotalRows},
		{"SELECT COUNT(DISTINCT arabic_text) FROM word_translations", &st.UniqueWords},
		{"SELECT COUNT(*) FROM word_translations WHERE " + withEtymology, &st.RowsWithEtymology},
		{"SELECT COUNT(DISTINCT arabic_text) FROM word_translations WHERE " + withEtymology, &st.UniqueWithEtymology},
	}
	for _, step := range steps {
		if err := s.db.QueryRow(step.query).Scan(step.dst); err != nil {
			return types.Stats{}, fmt.Errorf("stats query: %w", err)
		}
	}
	return st, nil
}

// InsertWord adds a row to word_translations. Rows are normally created
// by the corpus loader; this exists so tests can build fixture
// databases.
func (s *Store) InsertWord(w types.Word) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}

	_, err := s.db.Exec(`
		INSERT INTO word_translations (sura, ayah, word_position, arabic_text, translation, transliteration, etymology)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		w.Sura, w.Ayah, w.WordPosition, w.ArabicText, w.Translation, w.Transliteration, w.Etymology,
	)
	if err != nil {
		return fmt.Errorf("insert word %d:%d:%d: %w", w.Sura, w.Ayah, w.WordPosition, err)
	}
	return nil
}
