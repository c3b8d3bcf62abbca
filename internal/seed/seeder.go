package seed

import (
	"fmt"
	"io"

	"github.com/quranwbw/roots/internal/store"
)

// Run ensures the root_meanings table exists and upserts every catalog
// entry. A failing entry is reported and skipped; the remaining entries
// still go in. Reports the number of entries written.
func Run(s *store.Store, out io.Writer) error {
	if err := s.EnsureRootMeaningsTable(); err != nil {
		return err
	}

	inserted := 0
	for _, m := range Catalog {
		if err := s.UpsertRootMeaning(m); err != nil {
			fmt.Fprintf(out, "Error inserting %s: %v\n", m.Root, err)
			continue
		}
		inserted++
	}

	fmt.Fprintf(out, "Inserted %d root meanings\n", inserted)
	return nil
}
