package etymology

import (
	"fmt"
	"io"

	"github.com/quranwbw/roots/internal/store"
)

// Stats prints the four etymology population counters, each with a
// percentage against its own denominator. An empty table reads as 0%.
func Stats(s *store.Store, out io.Writer) error {
	st, err := s.Stats()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Total word entries: %d\n", st.TotalRows)
	fmt.Fprintf(out, "Unique words: %d\n", st.UniqueWords)
	fmt.Fprintf(out, "Entries with etymology: %d (%.1f%%)\n",
		st.RowsWithEtymology, store.Percent(st.RowsWithEtymology, st.TotalRows))
	fmt.Fprintf(out, "Unique words with etymology: %d (%.1f%%)\n",
		st.UniqueWithEtymology, store.Percent(st.UniqueWithEtymology, st.UniqueWords))
	return nil
}
