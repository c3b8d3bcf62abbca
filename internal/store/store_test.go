package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quranwbw/roots/pkg/types"
)

// setupStore opens a Store on a fresh temp database with the
// word_translations table created.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "words.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.EnsureWordsTable())
	return s
}

// seedWords inserts fixture rows for Al-Fatihah's opening words, with a
// duplicated surface form at two coordinates.
func seedWords(t *testing.T, s *Store) {
	t.Helper()
	words := []types.Word{
		{Sura: 1, Ayah: 1, WordPosition: 1, ArabicText: "بِسْمِ", Translation: "In (the) name", Transliteration: "bis'mi"},
		{Sura: 1, Ayah: 1, WordPosition: 2, ArabicText: "ٱللَّهِ", Translation: "(of) Allah", Transliteration: "l-lahi"},
		{Sura: 1, Ayah: 1, WordPosition: 3, ArabicText: "ٱلرَّحْمَٰنِ", Translation: "the Most Gracious", Transliteration: "l-raḥmāni"},
		// Same surface form appears again in 1:3.
		{Sura: 1, Ayah: 3, WordPosition: 1, ArabicText: "ٱلرَّحْمَٰنِ", Translation: "The Most Gracious", Transliteration: "l-raḥmāni"},
	}
	for _, w := range words {
		require.NoError(t, s.InsertWord(w))
	}
}

func TestOpen(t *testing.T) {
	t.Run("empty path is rejected", func(t *testing.T) {
		_, err := Open("")
		assert.ErrorIs(t, err, types.ErrDBPathEmpty)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		s, err := Open(filepath.Join(t.TempDir(), "words.db"))
		require.NoError(t, err)
		require.NoError(t, s.Close())
		assert.NoError(t, s.Close())
	})

	t.Run("operations after close fail", func(t *testing.T) {
		s, err := Open(filepath.Join(t.TempDir(), "words.db"))
		require.NoError(t, err)
		require.NoError(t, s.Close())

		_, err = s.Coverage()
		assert.ErrorIs(t, err, types.ErrStoreClosed)
	})
}

func TestApplyRootMappings(t *testing.T) {
	root := func(v string) *string { return &v }

	t.Run("updates rows at known coordinates", func(t *testing.T) {
		s := setupStore(t)
		seedWords(t, s)

		updated, notFound, err := s.ApplyRootMappings(context.Background(), []types.WordRoot{
			{Sura: 1, Ayah: 1, WordPosition: 1, Root: root("س-م-و")},
			{Sura: 1, Ayah: 1, WordPosition: 3, Root: root("ر-ح-م")},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, updated)
		assert.Equal(t, 0, notFound)

		c, err := s.Coverage()
		require.NoError(t, err)
		assert.Equal(t, 4, c.Total)
		assert.Equal(t, 2, c.WithRoot)
	})

	t.Run("absent coordinate counts as not found and leaves table unchanged", func(t *testing.T) {
		s := setupStore(t)
		seedWords(t, s)

		updated, notFound, err := s.ApplyRootMappings(context.Background(), []types.WordRoot{
			{Sura: 99, Ayah: 9, WordPosition: 9, Root: root("ر-ح-م")},
		})
		require.NoError(t, err)
		assert.Equal(t, 0, updated)
		assert.Equal(t, 1, notFound)

		c, err := s.Coverage()
		require.NoError(t, err)
		assert.Equal(t, 0, c.WithRoot)
	})

	t.Run("nil root writes NULL", func(t *testing.T) {
		s := setupStore(t)
		seedWords(t, s)

		updated, _, err := s.ApplyRootMappings(context.Background(), []types.WordRoot{
			{Sura: 1, Ayah: 1, WordPosition: 1, Root: nil},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, updated)

		c, err := s.Coverage()
		require.NoError(t, err)
		assert.Equal(t, 0, c.WithRoot)
	})
}

func TestSessionAssignEtymology(t *testing.T) {
	t.Run("broadcasts to all rows sharing the surface form", func(t *testing.T) {
		s := setupStore(t)
		seedWords(t, s)

		sess, err := s.Begin()
		require.NoError(t, err)
		n, err := sess.AssignEtymology("ٱلرَّحْمَٰنِ", "ر-ح-م")
		require.NoError(t, err)
		require.NoError(t, sess.Commit())

		assert.Equal(t, int64(2), n)
	})

	t.Run("uncommitted session is invisible", func(t *testing.T) {
		s := setupStore(t)
		seedWords(t, s)

		sess, err := s.Begin()
		require.NoError(t, err)
		_, err = sess.AssignEtymology("بِسْمِ", "س-م-و")
		require.NoError(t, err)
		require.NoError(t, sess.Rollback())

		c, err := s.Coverage()
		require.NoError(t, err)
		assert.Equal(t, 0, c.WithRoot)
	})
}

func TestDistinctWords(t *testing.T) {
	s := setupStore(t)
	seedWords(t, s)

	words, err := s.DistinctWords()
	require.NoError(t, err)

	// 1:1:3 and 1:3:1 share arabic_text but differ in translation
	// casing, so the tuple as a whole keeps them distinct.
	assert.Len(t, words, 4)
	for i := 1; i < len(words); i++ {
		assert.LessOrEqual(t, words[i-1].ArabicText, words[i].ArabicText)
	}
}

func TestWordsMissingEtymology(t *testing.T) {
	s := setupStore(t)
	seedWords(t, s)

	sess, err := s.Begin()
	require.NoError(t, err)
	_, err = sess.AssignEtymology("بِسْمِ", "س-م-و")
	require.NoError(t, err)
	require.NoError(t, sess.Commit())

	words, err := s.WordsMissingEtymology()
	require.NoError(t, err)

	require.Len(t, words, 3)
	// Ordered by first row id: 1:1:2 comes before either 1:1:3 or 1:3:1.
	assert.Equal(t, "ٱللَّهِ", words[0].ArabicText)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, Percent(0, 0), "empty table reads as zero, not a division error")
	assert.Equal(t, 50.0, Percent(1, 2))
	assert.Equal(t, 100.0, Percent(3, 3))
}

func TestStats(t *testing.T) {
	t.Run("counts rows and unique words", func(t *testing.T) {
		s := setupStore(t)
		seedWords(t, s)

		sess, err := s.Begin()
		require.NoError(t, err)
		_, err = sess.AssignEtymology("ٱلرَّحْمَٰنِ", "ر-ح-م")
		require.NoError(t, err)
		require.NoError(t, sess.Commit())

		st, err := s.Stats()
		require.NoError(t, err)
		assert.Equal(t, 4, st.TotalRows)
		assert.Equal(t, 3, st.UniqueWords)
		assert.Equal(t, 2, st.RowsWithEtymology)
		assert.Equal(t, 1, st.UniqueWithEtymology)
	})

	t.Run("empty table yields zero counts", func(t *testing.T) {
		s := setupStore(t)

		st, err := s.Stats()
		require.NoError(t, err)
		assert.Zero(t, st.TotalRows)
		assert.Zero(t, st.UniqueWords)
		assert.Zero(t, st.RowsWithEtymology)
		assert.Zero(t, st.UniqueWithEtymology)
	})
}
