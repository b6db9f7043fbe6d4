package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/tvshow-catalog/internal/auth"
	"github.com/iliyamo/tvshow-catalog/internal/catalog"
	"github.com/iliyamo/tvshow-catalog/internal/repository"
)

func TestWriteError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{repository.ErrGenreNotFound, http.StatusNotFound},
		{repository.ErrSeriesNotFound, http.StatusNotFound},
		{repository.ErrReviewNotFound, http.StatusNotFound},
		{repository.ErrUserNotFound, http.StatusNotFound},
		{repository.ErrEmailExists, http.StatusConflict},
		{repository.ErrGenreExists, http.StatusConflict},
		{repository.ErrDuplicateReview, http.StatusConflict},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{auth.ErrInvalidToken, http.StatusUnauthorized},
		{auth.ErrRefreshMismatch, http.StatusUnauthorized},
		{auth.ErrRefreshExpired, http.StatusUnauthorized},
		{auth.ErrUnauthenticated, http.StatusUnauthorized},
		{auth.ErrUnauthorized, http.StatusForbidden},
		{catalog.ErrNotOwner, http.StatusForbidden},
		{catalog.ErrReviewFrozen, http.StatusForbidden},
		{errors.New("something else"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, writeError(c, tt.err))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestPathID(t *testing.T) {
	t.Parallel()

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("genreId")
	c.SetParamValues("17")

	id, err := pathID(c, "genreId")
	require.NoError(t, err)
	assert.Equal(t, uint64(17), id)

	c.SetParamValues("-1")
	_, err = pathID(c, "genreId")
	assert.Error(t, err)
}
