// Package etymology implements the five operating modes of the
// etymology populator: CSV export, JSON and CSV bulk import, an
// interactive entry session, and a statistics report. Each mode is an
// independent function over an open store; reporting goes to an
// injected writer.
package etymology

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/quranwbw/roots/internal/store"
)

// csvHeader is the column layout shared by export and CSV import.
var csvHeader = []string{"arabic_text", "translation", "transliteration", "etymology"}

// Export writes every distinct word tuple to a UTF-8 CSV file at path,
// header row first, for manual etymology editing.
func Export(s *store.Store, path string, out io.Writer) error {
	words, err := s.DistinctWords()
	if err != nil {
		return fmt.Errorf("select words: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, word := range words {
		record := []string{word.ArabicText, word.Translation, word.Transliteration, word.Etymology}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	fmt.Fprintf(out, "Exported %d unique words to %s\n", len(words), path)
	return nil
}
