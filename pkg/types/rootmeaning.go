package types

// RootMeaning is one row of the root_meanings lookup table: linguistic
// metadata for a single Arabic root. Root is the unique key, written as
// dash-joined letters. PrimaryMeaning is required; the remaining fields
// are optional and stored as NULL when nil.
type RootMeaning struct {
	Root            string  `json:"root"`
	PrimaryMeaning  string  `json:"primary_meaning"`
	ExtendedMeaning *string `json:"extended_meaning,omitempty"`
	QuranUsage      *string `json:"quran_usage,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// Validate checks that the required fields are present.
func (m RootMeaning) Validate() error {
	if m.Root == "" {
		return ErrRootEmpty
	}
	if m.PrimaryMeaning == "" {
		return ErrPrimaryMeaningEmpty
	}
	return nil
}
