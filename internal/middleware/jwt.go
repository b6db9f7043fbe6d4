package middleware // reusable HTTP middleware shared by the route groups

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tvshow-catalog/internal/auth"
	"github.com/iliyamo/tvshow-catalog/internal/utils"
)

// callerKey is the echo context key the resolved caller is stored
// under. Handlers read it through CallerFrom.
const callerKey = "caller"

// JWTAuth returns middleware that validates a Bearer access token and
// stores the resolved auth.Caller in the request context. Expired
// tokens are rejected here; only the refresh endpoint accepts them.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			claims, err := utils.ParseClaims(raw, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			id, err := strconv.ParseUint(claims.Subject, 10, 64)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			role, ok := auth.ParseRole(claims.Role)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			c.Set(callerKey, auth.Caller{ID: id, Role: role})
			return next(c)
		}
	}
}

// CallerFrom extracts the caller resolved by JWTAuth. The zero Caller
// is returned on routes that did not run the middleware.
func CallerFrom(c echo.Context) auth.Caller {
	if v, ok := c.Get(callerKey).(auth.Caller); ok {
		return v
	}
	return auth.Caller{}
}
