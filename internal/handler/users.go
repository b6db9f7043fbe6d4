package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tvshow-catalog/internal/auth"
	"github.com/iliyamo/tvshow-catalog/internal/middleware"
)

// UserHandler exposes the admin-only user management endpoints.
type UserHandler struct {
	Sessions *auth.Manager
}

func NewUserHandler(sessions *auth.Manager) *UserHandler {
	return &UserHandler{Sessions: sessions}
}

// List returns the identities holding a tier. The tier comes from the
// ?role= query parameter and defaults to USER.
func (h *UserHandler) List(c echo.Context) error {
	roleName := strings.ToUpper(strings.TrimSpace(c.QueryParam("role")))
	if roleName == "" {
		roleName = string(auth.RoleUser)
	}
	role, ok := auth.ParseRole(roleName)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown role"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Sessions.ListUsers(ctx, middleware.CallerFrom(c), role)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]userPart, 0, len(users))
	for i := range users {
		out = append(out, newUserPart(&users[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns a single identity by id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Sessions.GetUser(ctx, middleware.CallerFrom(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, newUserPart(u))
}

// Delete removes an identity. The identity's reviews survive with
// their reviewer reference cleared.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Sessions.DeleteUser(ctx, middleware.CallerFrom(c), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "user deleted"})
}

// Revoke force-ends another identity's session.
func (h *UserHandler) Revoke(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Sessions.RevokeUser(ctx, middleware.CallerFrom(c), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "session revoked"})
}
