package morphology

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	t.Run("returns full payload", func(t *testing.T) {
		payload := "1:1:1:1\tx\tN\tSTEM|ROOT:سمو\n"
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			_, _ = w.Write([]byte(payload))
		}))
		defer srv.Close()

		got, err := Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := Fetch(context.Background(), srv.URL)
		assert.Error(t, err)
	})

	t.Run("transport error propagates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := Fetch(context.Background(), srv.URL)
		assert.Error(t, err)
	})
}
