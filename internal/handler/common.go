package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tvshow-catalog/internal/auth"
	"github.com/iliyamo/tvshow-catalog/internal/catalog"
	"github.com/iliyamo/tvshow-catalog/internal/repository"
)

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

// writeError maps domain errors onto HTTP responses. Every handler
// funnels service failures through here so the status mapping lives in
// one place at the transport boundary.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrGenreNotFound),
		errors.Is(err, repository.ErrSeriesNotFound),
		errors.Is(err, repository.ErrReviewNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrEmailExists),
		errors.Is(err, repository.ErrGenreExists),
		errors.Is(err, repository.ErrDuplicateReview):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrRefreshMismatch),
		errors.Is(err, auth.ErrRefreshExpired):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
	case errors.Is(err, auth.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	case errors.Is(err, auth.ErrUnauthorized),
		errors.Is(err, catalog.ErrNotOwner),
		errors.Is(err, catalog.ErrReviewFrozen):
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
