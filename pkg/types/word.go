package types

// Word is a single word occurrence in the word_translations table,
// located by its (sura, ayah, word_position) coordinate. Rows are
// created by the corpus loader; this toolkit only fills in Etymology.
type Word struct {
	ID              int64   `json:"id"`
	Sura            int     `json:"sura"`
	Ayah            int     `json:"ayah"`
	WordPosition    int     `json:"word_position"`
	ArabicText      string  `json:"arabic_text"`
	Translation     string  `json:"translation"`
	Transliteration string  `json:"transliteration"`
	Etymology       *string `json:"etymology,omitempty"`
}

// WordRoot maps a word coordinate to its formatted root (e.g. ر-ح-م).
// A nil Root clears the etymology column rather than writing an empty
// string.
type WordRoot struct {
	Sura         int
	Ayah         int
	WordPosition int
	Root         *string
}

// DistinctWord is one distinct (arabic_text, translation,
// transliteration, etymology) tuple, as produced by the export query.
// Etymology is the empty string when the column is NULL.
type DistinctWord struct {
	ArabicText      string
	Translation     string
	Transliteration string
	Etymology       string
}

// Assignment is one arabic_text -> etymology update. The update is a
// broadcast: every row sharing ArabicText receives the value, since
// surface forms repeat across verses.
type Assignment struct {
	ArabicText string
	Etymology  string
}

// Coverage counts how many word rows carry a non-empty etymology.
type Coverage struct {
	Total    int
	WithRoot int
}

// Stats holds the four etymology population counters reported by the
// stats mode.
type Stats struct {
	TotalRows           int
	UniqueWords         int
	RowsWithEtymology   int
	UniqueWithEtymology int
}
