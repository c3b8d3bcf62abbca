package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quranwbw/roots/pkg/types"
)

func strPtr(v string) *string { return &v }

func TestUpsertRootMeaning(t *testing.T) {
	setup := func(t *testing.T) *Store {
		t.Helper()
		s, err := Open(filepath.Join(t.TempDir(), "words.db"))
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		require.NoError(t, s.EnsureRootMeaningsTable())
		return s
	}

	t.Run("round trips optional fields", func(t *testing.T) {
		s := setup(t)

		m := types.RootMeaning{
			Root:            "ر-ح-م",
			PrimaryMeaning:  "mercy, compassion, womb",
			ExtendedMeaning: strPtr("divine mercy is like a mother's love"),
		}
		require.NoError(t, s.UpsertRootMeaning(m))

		got, err := s.GetRootMeaning("ر-ح-م")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, m.PrimaryMeaning, got.PrimaryMeaning)
		require.NotNil(t, got.ExtendedMeaning)
		assert.Equal(t, *m.ExtendedMeaning, *got.ExtendedMeaning)
		assert.Nil(t, got.QuranUsage)
		assert.Nil(t, got.Notes)
	})

	t.Run("replaces on same root key", func(t *testing.T) {
		s := setup(t)

		require.NoError(t, s.UpsertRootMeaning(types.RootMeaning{Root: "ع-ل-م", PrimaryMeaning: "to know"}))
		require.NoError(t, s.UpsertRootMeaning(types.RootMeaning{Root: "ع-ل-م", PrimaryMeaning: "to know, knowledge"}))

		n, err := s.CountRootMeanings()
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		got, err := s.GetRootMeaning("ع-ل-م")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "to know, knowledge", got.PrimaryMeaning)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		s := setup(t)

		err := s.UpsertRootMeaning(types.RootMeaning{PrimaryMeaning: "mercy"})
		assert.ErrorIs(t, err, types.ErrRootEmpty)

		err = s.UpsertRootMeaning(types.RootMeaning{Root: "ر-ح-م"})
		assert.ErrorIs(t, err, types.ErrPrimaryMeaningEmpty)
	})

	t.Run("missing root reads as nil", func(t *testing.T) {
		s := setup(t)

		got, err := s.GetRootMeaning("ق-ل-ب")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
