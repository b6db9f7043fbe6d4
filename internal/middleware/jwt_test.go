package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/tvshow-catalog/internal/auth"
	"github.com/iliyamo/tvshow-catalog/internal/utils"
)

const testSecret = "middleware-test-secret"

func doRequest(t *testing.T, mw []echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, auth.Caller) {
	t.Helper()

	e := echo.New()
	var seen auth.Caller
	h := func(c echo.Context) error {
		seen = CallerFrom(c)
		return c.NoContent(http.StatusOK)
	}
	e.GET("/probe", h, mw...)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, seen
}

func bearerFor(t *testing.T, userID uint64, role string, ttlSec int) string {
	t.Helper()
	tok, err := utils.NewAccessToken(testSecret, "catalog", "catalog-api", userID, role, ttlSec)
	require.NoError(t, err)
	return "Bearer " + tok.Token
}

func TestJWTAuth_ResolvesCaller(t *testing.T) {
	t.Parallel()

	rec, caller := doRequest(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, bearerFor(t, 42, "POSTER", 900))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, auth.Caller{ID: 42, Role: auth.RolePoster}, caller)
}

func TestJWTAuth_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
		{name: "expired token", header: bearerFor(t, 42, "USER", -60)},
		{name: "unknown role claim", header: bearerFor(t, 42, "SUPERUSER", 900)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := doRequest(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, tt.header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireAtLeast(t *testing.T) {
	t.Parallel()

	chain := func(min auth.Role) []echo.MiddlewareFunc {
		return []echo.MiddlewareFunc{JWTAuth(testSecret), RequireAtLeast(min)}
	}

	rec, _ := doRequest(t, chain(auth.RolePoster), bearerFor(t, 1, "USER", 900))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = doRequest(t, chain(auth.RolePoster), bearerFor(t, 1, "ADMIN", 900))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Without JWTAuth in front there is no caller at all.
	rec, _ = doRequest(t, []echo.MiddlewareFunc{RequireAtLeast(auth.RoleUser)}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
