package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tvshow-catalog/internal/auth"
	"github.com/iliyamo/tvshow-catalog/internal/handler"
	"github.com/iliyamo/tvshow-catalog/internal/middleware"
)

// RegisterCatalog registers the nested genre/series/review endpoints
// under /v1/genres. Every route requires a valid access token; the
// role middleware pre-filters by tier and the catalog service enforces
// the same rules again, plus ownership. Read endpoints go through the
// response cache when one is supplied.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	g := e.Group(
		"/v1/genres",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireAtLeast(auth.RoleUser),
	)

	reads := []echo.MiddlewareFunc{}
	if cache != nil {
		reads = append(reads, cache)
	}
	posters := middleware.RequireAtLeast(auth.RolePoster)
	admins := middleware.RequireAtLeast(auth.RoleAdmin)

	// ---- Genres ----
	g.GET("", h.ListGenres, reads...)
	g.GET("/:genreId", h.GetGenre, reads...)
	g.POST("", h.CreateGenre, admins)
	g.PUT("/:genreId", h.UpdateGenre, admins)
	g.PATCH("/:genreId", h.UpdateGenre, admins)
	g.DELETE("/:genreId", h.DeleteGenre, admins)

	// ---- Series (always addressed through their genre) ----
	g.GET("/:genreId/series", h.ListSeries, reads...)
	g.GET("/:genreId/series/:seriesId", h.GetSeries, reads...)
	g.POST("/:genreId/series", h.CreateSeries, posters)
	g.PUT("/:genreId/series/:seriesId", h.UpdateSeries, posters)
	g.PATCH("/:genreId/series/:seriesId", h.UpdateSeries, posters)
	g.DELETE("/:genreId/series/:seriesId", h.DeleteSeries, posters)

	// ---- Reviews (addressed through genre and series) ----
	g.GET("/:genreId/series/:seriesId/reviews", h.ListReviews, reads...)
	g.GET("/:genreId/series/:seriesId/reviews/:reviewId", h.GetReview, reads...)
	g.POST("/:genreId/series/:seriesId/reviews", h.CreateReview)
	g.PUT("/:genreId/series/:seriesId/reviews/:reviewId", h.UpdateReview)
	g.PATCH("/:genreId/series/:seriesId/reviews/:reviewId", h.UpdateReview)
	g.DELETE("/:genreId/series/:seriesId/reviews/:reviewId", h.DeleteReview)
}
