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

// CatalogHandler bundles the genre, series and review endpoints over
// the catalog service.
type CatalogHandler struct {
	Catalog *catalog.Service
}

func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{Catalog: svc}
}

// ----- DTOs -----

type genreReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type genreResp struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func newGenreResp(g *model.Genre) genreResp {
	return genreResp{ID: g.ID, Name: g.Name, Description: g.Description}
}

// ListGenres returns the full taxonomy.
func (h *CatalogHandler) ListGenres(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	genres, err := h.Catalog.ListGenres(ctx, middleware.CallerFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	out := make([]genreResp, 0, len(genres))
	for i := range genres {
		out = append(out, newGenreResp(&genres[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// GetGenre returns one genre by id.
func (h *CatalogHandler) GetGenre(c echo.Context) error {
	id, err := pathID(c, "genreId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid genre id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	g, err := h.Catalog.GetGenre(ctx, middleware.CallerFrom(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, newGenreResp(g))
}

// CreateGenre adds a taxonomy entry.
func (h *CatalogHandler) CreateGenre(c echo.Context) error {
	var req genreReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	g, err := h.Catalog.CreateGenre(ctx, middleware.CallerFrom(c), req.Name, req.Description)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, newGenreResp(g))
}

// UpdateGenre replaces a genre's name and description.
func (h *CatalogHandler) UpdateGenre(c echo.Context) error {
	id, err := pathID(c, "genreId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid genre id"})
	}
	var req genreReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Catalog.UpdateGenre(ctx, middleware.CallerFrom(c), id, req.Name, req.Description); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "genre updated"})
}

// DeleteGenre removes a genre. Series under it keep existing under
// their other genres.
func (h *CatalogHandler) DeleteGenre(c echo.Context) error {
	id, err := pathID(c, "genreId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid genre id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Catalog.DeleteGenre(ctx, middleware.CallerFrom(c), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "genre deleted"})
}
