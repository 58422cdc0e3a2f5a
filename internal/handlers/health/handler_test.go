package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func serve(checks map[string]Check) *httptest.ResponseRecorder {
	h := New(checks)
	r := chi.NewRouter()
	h.Router(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	return rec
}

func TestHealth(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	t.Run("all dependencies up", func(t *testing.T) {
		rec := serve(map[string]Check{"mongo": ok, "redis": ok})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"message":"OK"}`, rec.Body.String())
	})

	t.Run("one dependency down", func(t *testing.T) {
		rec := serve(map[string]Check{"mongo": ok, "redis": down})

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("no checks", func(t *testing.T) {
		rec := serve(nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
