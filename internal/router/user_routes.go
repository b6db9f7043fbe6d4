package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tvshow-catalog/internal/auth"
	"github.com/iliyamo/tvshow-catalog/internal/handler"
	"github.com/iliyamo/tvshow-catalog/internal/middleware"
)

// RegisterUsers registers the ADMIN-scoped user management endpoints
// under /v1/users.
func RegisterUsers(e *echo.Echo, u *handler.UserHandler, jwtSecret string) {
	g := e.Group(
		"/v1/users",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireAtLeast(auth.RoleAdmin),
	)

	g.GET("", u.List)
	g.GET("/:id", u.Get)
	g.DELETE("/:id", u.Delete)
	g.POST("/:id/revoke", u.Revoke)
}
