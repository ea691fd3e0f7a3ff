package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/po3rin/saunadge/internal/model"
)

type stubSource struct {
	sakatsu string
	err     error
	gotID   string
}

func (s *stubSource) Sakatsu(_ context.Context, id string) (string, error) {
	s.gotID = id
	return s.sakatsu, s.err
}

func serveBadge(t *testing.T, source *stubSource, target string) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.Get("/api/v1/badge/{id}", NewBadgeHandler(source, model.DefaultBadgeStyle).Get)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestBadgeHandler_Get(t *testing.T) {
	t.Parallel()

	t.Run("success badge", func(t *testing.T) {
		source := &stubSource{sakatsu: "42"}
		rec := serveBadge(t, source, "/api/v1/badge/po3rin")

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		require.Equal(t, "po3rin", source.gotID)

		var badge model.Badge
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &badge))
		require.Equal(t, model.DefaultBadgeStyle.Success("42"), badge)
	})

	t.Run("every failure kind collapses to one badge", func(t *testing.T) {
		for _, cause := range []error{
			fmt.Errorf("%w: unexpected status 404", model.ErrFetchFailed),
			model.ErrParseFailed,
			model.ErrNotFound,
			model.ErrEmptyText,
		} {
			rec := serveBadge(t, &stubSource{err: cause}, "/api/v1/badge/1")

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			var badge model.Badge
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &badge))
			assert.Equal(t, model.DefaultBadgeStyle.Failure(), badge)
			assert.NotContains(t, rec.Body.String(), cause.Error())
		}
	})

	t.Run("decodes an escaped id once", func(t *testing.T) {
		source := &stubSource{sakatsu: "1"}
		serveBadge(t, source, "/api/v1/badge/a%2Fb")

		require.Equal(t, "a/b", source.gotID)
	})
}

func TestWriteBadge_DoesNotEscapeLogo(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteBadge(rec, model.DefaultBadgeStyle.Failure())

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), `"logoSvg":"<svg`)
	require.NotContains(t, rec.Body.String(), "\\u003c")
}
