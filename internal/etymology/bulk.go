package etymology

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/quranwbw/roots/internal/store"
	"github.com/quranwbw/roots/pkg/types"
)

// ImportJSON applies a flat arabic_text -> etymology mapping from the
// JSON file at path. Every entry is written as-is, including empty
// strings; clearing a field through JSON is allowed. All updates commit
// together.
func ImportJSON(s *store.Store, path string, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read mapping file: %w", err)
	}

	var mappings map[string]string
	if err := json.Unmarshal(data, &mappings); err != nil {
		return fmt.Errorf("decode mapping file %s: %w", path, err)
	}

	entries := make([]types.Assignment, 0, len(mappings))
	for arabicText, etym := range mappings {
		entries = append(entries, types.Assignment{ArabicText: arabicText, Etymology: etym})
	}

	updated, err := s.BulkAssign(entries)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Updated %d word entries with etymology data\n", updated)
	return nil
}

// ImportCSV applies arabic_text -> etymology updates from the CSV file
// at path. The header row must name arabic_text and etymology columns;
// rows with an empty etymology value are skipped rather than clearing
// the field. All updates commit together.
func ImportCSV(s *store.Store, path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open mapping file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Ragged rows carry absent cells, they are not malformed input.
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("read header of %s: %w", path, err)
	}

	textCol, etymCol := -1, -1
	for i, name := range header {
		switch name {
		case "arabic_text":
			textCol = i
		case "etymology":
			etymCol = i
		}
	}
	if textCol < 0 || etymCol < 0 {
		return fmt.Errorf("%s: header must include arabic_text and etymology columns", path)
	}

	var entries []types.Assignment
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		// A missing or empty cell means "no data", not "clear the field".
		if textCol >= len(record) || etymCol >= len(record) || record[etymCol] == "" {
			continue
		}
		entries = append(entries, types.Assignment{ArabicText: record[textCol], Etymology: record[etymCol]})
	}

	updated, err := s.BulkAssign(entries)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Updated %d word entries with etymology data\n", updated)
	return nil
}
