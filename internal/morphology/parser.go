package morphology

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/quranwbw/roots/pkg/types"
)

// rootPattern extracts the value of a ROOT tag from the pipe-delimited
// morphology field, e.g. "ROOT:رحم|LEM:رَحْمٰن" captures "رحم".
var rootPattern = regexp.MustCompile(`ROOT:([^|]+)`)

// FormatRoot joins the letters of a raw root with dashes
// (رحم -> ر-ح-م). An empty root yields nil, never an empty string.
func FormatRoot(root string) *string {
	if root == "" {
		return nil
	}
	letters := strings.Split(root, "")
	formatted := strings.Join(letters, "-")
	return &formatted
}

// Parse extracts one formatted root per (sura, ayah, word_position)
// coordinate from the newline-delimited corpus payload.
//
// Lines that are blank, start with '#', carry fewer than 4 tab fields,
// or have a malformed location are skipped. A word may span several
// segments; the first segment in file order that carries a ROOT tag
// wins for its coordinate, so results preserve encounter order.
func Parse(data string) []types.WordRoot {
	type key struct{ sura, ayah, word int }

	seen := make(map[key]bool)
	var roots []types.WordRoot

	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) < 4 {
			continue
		}

		// Location is sura:ayah:word:segment; only the first three
		// components identify the word.
		loc := strings.Split(parts[0], ":")
		if len(loc) < 3 {
			continue
		}
		sura, err := strconv.Atoi(loc[0])
		if err != nil {
			continue
		}
		ayah, err := strconv.Atoi(loc[1])
		if err != nil {
			continue
		}
		word, err := strconv.Atoi(loc[2])
		if err != nil {
			continue
		}

		m := rootPattern.FindStringSubmatch(parts[3])
		if m == nil {
			continue
		}

		k := key{sura, ayah, word}
		if seen[k] {
			continue
		}
		seen[k] = true

		roots = append(roots, types.WordRoot{
			Sura:         sura,
			Ayah:         ayah,
			WordPosition: word,
			Root:         FormatRoot(m[1]),
		})
	}

	return roots
}
