package etymology

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/quranwbw/roots/internal/store"
)

// Interactive prompts for a root per word currently missing etymology,
// reading line-oriented answers from in. "quit" halts the loop, "skip"
// or an empty answer moves on, and any other answer is written to every
// row sharing the word's surface form. The session commits once at the
// end, including after a quit, so partial work is kept.
func Interactive(s *store.Store, in io.Reader, out io.Writer) error {
	words, err := s.WordsMissingEtymology()
	if err != nil {
		return fmt.Errorf("select words: %w", err)
	}

	fmt.Fprintf(out, "Found %d words without etymology (showing first 100)\n", len(words))
	fmt.Fprintln(out, "Enter etymology (Arabic root like ر-ح-م) or 'skip' to skip, 'quit' to exit")
	fmt.Fprintln(out)

	sess, err := s.Begin()
	if err != nil {
		return err
	}
	defer sess.Rollback()

	scanner := bufio.NewScanner(in)
	for _, w := range words {
		fmt.Fprintf(out, "Arabic: %s\n", w.ArabicText)
		fmt.Fprintf(out, "Translation: %s\n", w.Translation)
		fmt.Fprintf(out, "Transliteration: %s\n", w.Transliteration)
		fmt.Fprint(out, "Etymology: ")

		if !scanner.Scan() {
			// Input channel closed; treat like quit and keep the work so far.
			break
		}
		answer := strings.TrimSpace(scanner.Text())

		lower := strings.ToLower(answer)
		if lower == "quit" {
			break
		}
		if lower == "skip" || answer == "" {
			continue
		}

		if _, err := sess.AssignEtymology(w.ArabicText, answer); err != nil {
			return err
		}
		fmt.Fprintf(out, "Updated!\n\n")
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	return sess.Commit()
}
