package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tvshow-catalog/internal/auth"
)

// RequireAtLeast returns middleware enforcing a minimum role tier on a
// route group. The hierarchy itself lives in auth.Role.HasAtLeast, so
// no call site enumerates role sets. Assumes JWTAuth ran earlier in
// the chain.
func RequireAtLeast(min auth.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := CallerFrom(c)
			if caller.IsZero() {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
			}
			if !caller.Role.HasAtLeast(min) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
