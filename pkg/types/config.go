// Package types defines the entity types, configuration, and standard
// errors shared by the roots pipelines.
package types

// DefaultMorphologyURL is the upstream corpus fetched by the
// morphology importer when config.yaml does not override it.
const DefaultMorphologyURL = "https://raw.githubusercontent.com/mustafa0x/quran-morphology/master/quran-morphology.txt"

// Config holds the resolved settings for a pipeline run.
type Config struct {
	// DBPath is the path of the word-by-word SQLite database file.
	DBPath string `json:"db_path" yaml:"db_path"`

	// MorphologyURL is the source of the morphology corpus. Empty
	// means DefaultMorphologyURL.
	MorphologyURL string `json:"morphology_url" yaml:"morphology_url"`
}

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return ErrDBPathEmpty
	}
	return nil
}
