// Root command for the roots CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quranwbw/roots/internal/paths"
	"github.com/quranwbw/roots/internal/store"
	"github.com/quranwbw/roots/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDBPath    string
)

// cfg is the resolved configuration for this run. Set by
// PersistentPreRunE so all subcommands can use it.
var cfg types.Config

var rootCmd = &cobra.Command{
	Use:   "roots",
	Short: "roots imports Arabic root data into a word-by-word Quran database",
	Long: `roots is a set of one-shot import utilities for the word-by-word
translation database. It can download the quran-morphology corpus and
fill in per-word roots, bulk-update etymology from JSON or CSV mapping
files, drive an interactive entry session, and seed a lookup table of
curated root meanings.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		v, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		dbPath, err := paths.ResolveDBPath(flagDBPath, v.GetString(cfgKeyDBPath))
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		cfg = types.Config{
			DBPath:        dbPath,
			MorphologyURL: v.GetString(cfgKeyMorphologyURL),
		}
		return cfg.Validate()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "database file (default: $(CWD)/word_by_word_en.db)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(importMorphologyCmd)
	rootCmd.AddCommand(etymologyCmd)
	rootCmd.AddCommand(seedMeaningsCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > ROOTS_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// openStore opens the store on the resolved database path. The caller
// must defer Close on every exit path.
func openStore() (*store.Store, error) {
	return store.Open(cfg.DBPath)
}

// morphologyURL returns the configured corpus URL, falling back to the
// published quran-morphology location.
func morphologyURL() string {
	if cfg.MorphologyURL != "" {
		return cfg.MorphologyURL
	}
	return types.DefaultMorphologyURL
}
