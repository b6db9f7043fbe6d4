package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tvshow-catalog/internal/catalog"
	"github.com/iliyamo/tvshow-catalog/internal/middleware"
	"github.com/iliyamo/tvshow-catalog/internal/model"
)

// ----- DTOs -----

type createSeriesReq struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Directors    string   `json:"directors"`
	StarringCast string   `json:"starring_cast"`
	PosterID     uint64   `json:"poster_id"` // optional; defaults to the caller
	GenreIDs     []uint64 `json:"genre_ids"`
}

type updateSeriesReq struct {
	Description  string `json:"description"`
	Directors    string `json:"directors"`
	StarringCast string `json:"starring_cast"`
}

type seriesResp struct {
	ID           uint64   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Directors    string   `json:"directors"`
	StarringCast string   `json:"starring_cast"`
	PosterID     uint64   `json:"poster_id"`
	GenreIDs     []uint64 `json:"genre_ids"`
}

func newSeriesResp(s *model.Series) seriesResp {
	return seriesResp{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Directors:    s.Directors,
		StarringCast: s.StarringCast,
		PosterID:     s.PosterID,
		GenreIDs:     s.GenreIDs,
	}
}

// seriesPath pulls the genre and series ids out of the nested route.
func seriesPath(c echo.Context) (genreID, seriesID uint64, err error) {
	if genreID, err = pathID(c, "genreId"); err != nil {
		return 0, 0, err
	}
	if seriesID, err = pathID(c, "seriesId"); err != nil {
		return 0, 0, err
	}
	return genreID, seriesID, nil
}

// ListSeries returns the series under a genre.
func (h *CatalogHandler) ListSeries(c echo.Context) error {
	genreID, err := pathID(c, "genreId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid genre id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	series, err := h.Catalog.ListSeries(ctx, middleware.CallerFrom(c), genreID)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]seriesResp, 0, len(series))
	for i := range series {
		out = append(out, newSeriesResp(&series[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// GetSeries returns one series under a genre.
func (h *CatalogHandler) GetSeries(c echo.Context) error {
	genreID, seriesID, err := seriesPath(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Catalog.GetSeries(ctx, middleware.CallerFrom(c), genreID, seriesID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, newSeriesResp(s))
}

// CreateSeries adds a series. The route's genre must be among the
// referenced genres, so membership always includes the path the
// client posted under.
func (h *CatalogHandler) CreateSeries(c echo.Context) error {
	genreID, err := pathID(c, "genreId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid genre id"})
	}
	var req createSeriesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	genreIDs := req.GenreIDs
	if !containsID(genreIDs, genreID) {
		genreIDs = append(genreIDs, genreID)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Catalog.CreateSeries(ctx, middleware.CallerFrom(c), catalog.CreateSeriesInput{
		Name:         req.Name,
		Description:  req.Description,
		Directors:    req.Directors,
		StarringCast: req.StarringCast,
		PosterID:     req.PosterID,
		GenreIDs:     genreIDs,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, newSeriesResp(s))
}

// UpdateSeries patches a series' description, directors and cast.
func (h *CatalogHandler) UpdateSeries(c echo.Context) error {
	genreID, seriesID, err := seriesPath(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateSeriesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Catalog.UpdateSeries(ctx, middleware.CallerFrom(c), genreID, seriesID, req.Description, req.Directors, req.StarringCast); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "series updated"})
}

// DeleteSeries removes a series and its reviews.
func (h *CatalogHandler) DeleteSeries(c echo.Context) error {
	genreID, seriesID, err := seriesPath(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Catalog.DeleteSeries(ctx, middleware.CallerFrom(c), genreID, seriesID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "series deleted"})
}

func containsID(ids []uint64, id uint64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
