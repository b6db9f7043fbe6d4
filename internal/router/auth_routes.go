package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tvshow-catalog/internal/handler"
	"github.com/iliyamo/tvshow-catalog/internal/middleware"
)

// RegisterAuth registers the authentication endpoints. Unauthenticated
// operations live under /v1/auth; logout and the identity lookup need
// a valid access token. The rate limiter guards the credential and
// token endpoints against brute forcing; pass nil to disable it.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
	g := e.Group("/v1/auth")
	if limiter != nil {
		g.Use(limiter)
	}
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Refresh accepts an expired access token in the body; it does not
	// go through JWTAuth.
	g.POST("/refresh", a.Refresh)

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.POST("/auth/logout", a.Logout)
	auth.GET("/me", a.Me)
}
