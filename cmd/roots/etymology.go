// Etymology command: dispatcher over the five populator modes.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quranwbw/roots/internal/etymology"
	"github.com/quranwbw/roots/pkg/types"
)

// Mode flag values. The flags are mutually exclusive; no flag means
// stats.
var (
	flagExportPath  string
	flagFromJSON    string
	flagFromCSV     string
	flagInteractive bool
	flagStats       bool
)

var etymologyCmd = &cobra.Command{
	Use:   "etymology",
	Short: "Populate or inspect etymology data",
	Long: `Etymology updates the etymology column of the word_translations table.

Exactly one mode may be selected per invocation:

  --export <path>     write distinct words to a CSV file for manual editing
  --from-json <path>  bulk update from a JSON file mapping arabic_text -> root
  --from-csv <path>   bulk update from a CSV file with arabic_text,etymology columns
  --interactive       prompt for roots one word at a time
  --stats             show population statistics (default)

Updates match on arabic_text, so one mapping entry may change several
rows sharing that surface form.

Example:
  roots etymology --export words.csv
  roots etymology --from-json roots.json
  roots etymology --interactive`,
	RunE: runEtymology,
}

func init() {
	etymologyCmd.Flags().StringVar(&flagExportPath, "export", "", "export unique words to a CSV file")
	etymologyCmd.Flags().StringVar(&flagFromJSON, "from-json", "", "update from a JSON mapping file")
	etymologyCmd.Flags().StringVar(&flagFromCSV, "from-csv", "", "update from a CSV mapping file")
	etymologyCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "interactive entry mode")
	etymologyCmd.Flags().BoolVar(&flagStats, "stats", false, "show statistics")
}

func runEtymology(cmd *cobra.Command, args []string) error {
	selected := 0
	for _, on := range []bool{
		flagExportPath != "",
		flagFromJSON != "",
		flagFromCSV != "",
		flagInteractive,
		flagStats,
	} {
		if on {
			selected++
		}
	}
	if selected > 1 {
		return types.ErrModeConflict
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagExportPath != "":
		return etymology.Export(s, flagExportPath, out)
	case flagFromJSON != "":
		return etymology.ImportJSON(s, flagFromJSON, out)
	case flagFromCSV != "":
		return etymology.ImportCSV(s, flagFromCSV, out)
	case flagInteractive:
		return etymology.Interactive(s, os.Stdin, out)
	default:
		return etymology.Stats(s, out)
	}
}
