package binder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landingkit/binder"
)

func TestQuery(t *testing.T) {
	type toggleRequest struct {
		Index int    `query:"index"`
		Open  bool   `query:"open"`
		Field string `query:"field"`
		Skip  string `query:"-"`
	}

	t.Run("binds typed query parameters", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/faq/toggle?index=2&open=true&field=email", nil)

		var q toggleRequest
		err := binder.Query()(req, &q)
		require.NoError(t, err)

		assert.Equal(t, 2, q.Index)
		assert.True(t, q.Open)
		assert.Equal(t, "email", q.Field)
	})

	t.Run("leaves zero values for absent parameters", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/faq/toggle", nil)

		var q toggleRequest
		err := binder.Query()(req, &q)
		require.NoError(t, err)

		assert.Zero(t, q.Index)
		assert.False(t, q.Open)
	})

	t.Run("binds untagged fields by lowercase name", func(t *testing.T) {
		type req struct {
			Page int
		}
		r := httptest.NewRequest(http.MethodGet, "/?page=3", nil)

		var q req
		err := binder.Query()(r, &q)
		require.NoError(t, err)
		assert.Equal(t, 3, q.Page)
	})

	t.Run("applies to GET requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?field=name", nil)

		var q toggleRequest
		err := binder.Query()(req, &q)
		require.NoError(t, err)
		assert.Equal(t, "name", q.Field)
	})

	t.Run("fails for malformed int", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/faq/toggle?index=two", nil)

		var q toggleRequest
		err := binder.Query()(req, &q)
		assert.ErrorIs(t, err, binder.ErrInvalidQuery)
	})
}
