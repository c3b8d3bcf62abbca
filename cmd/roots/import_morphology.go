// Import-morphology command: download the morphology corpus and fill
// in per-word roots.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quranwbw/roots/internal/morphology"
	"github.com/quranwbw/roots/internal/store"
)

var importMorphologyCmd = &cobra.Command{
	Use:   "import-morphology",
	Short: "Download the quran-morphology corpus and import word roots",
	Long: `Import-morphology downloads the quran-morphology corpus, extracts a
root for each word coordinate, and writes it into the etymology column.

A word may have several morphological segments; the first segment
carrying a ROOT tag wins for that word. Coverage statistics are printed
before and after so progress can be verified.

Example:
  roots import-morphology
  roots import-morphology --db app/src/main/assets/word_by_word_en.db`,
	RunE: runImportMorphology,
}

func runImportMorphology(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== Quran Root Importer ===")
	fmt.Fprintln(out)

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	printCoverage := func(label string) error {
		c, err := s.Coverage()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %d/%d words have etymology (%.1f%%)\n",
			label, c.WithRoot, c.Total, store.Percent(c.WithRoot, c.Total))
		return nil
	}

	if err := printCoverage("Before"); err != nil {
		return err
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Downloading morphology data...")
	data, err := morphology.Fetch(cmd.Context(), morphologyURL())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Downloaded %d bytes of morphology data\n", len(data))

	mappings := morphology.Parse(data)
	fmt.Fprintf(out, "Extracted roots for %d word positions\n", len(mappings))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Updating database...")
	updated, notFound, err := s.ApplyRootMappings(cmd.Context(), mappings)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Updated: %d words\n", updated)
	fmt.Fprintf(out, "Not found in DB: %d positions\n", notFound)
	fmt.Fprintln(out)

	return printCoverage("After")
}
