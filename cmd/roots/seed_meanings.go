// Seed-meanings command: write the curated root meanings catalog.
package main

import (
	"github.com/spf13/cobra"

	"github.com/quranwbw/roots/internal/seed"
)

var seedMeaningsCmd = &cobra.Command{
	Use:   "seed-meanings",
	Short: "Seed the root_meanings lookup table",
	Long: `Seed-meanings creates the root_meanings table if needed and writes the
curated catalog of Arabic root meanings into it. Entries are keyed by
root, so re-running replaces rather than duplicates.

Example:
  roots seed-meanings`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		return seed.Run(s, cmd.OutOrStdout())
	},
}
