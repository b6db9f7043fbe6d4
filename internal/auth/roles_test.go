package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAtLeast_Hierarchy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role Role
		min  Role
		want bool
	}{
		{RoleUser, RoleUser, true},
		{RoleUser, RolePoster, false},
		{RoleUser, RoleAdmin, false},
		{RolePoster, RoleUser, true},
		{RolePoster, RolePoster, true},
		{RolePoster, RoleAdmin, false},
		{RoleAdmin, RoleUser, true},
		{RoleAdmin, RolePoster, true},
		{RoleAdmin, RoleAdmin, true},
		{Role("GUEST"), RoleUser, false},
		{RoleAdmin, Role("GUEST"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.role.HasAtLeast(tt.min), "%s at least %s", tt.role, tt.min)
	}
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	r, ok := ParseRole("ADMIN")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, r)

	_, ok = ParseRole("admin")
	assert.False(t, ok)
	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestCallerRequireAtLeast(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, Caller{}.RequireAtLeast(RoleUser), ErrUnauthenticated)
	assert.ErrorIs(t, Caller{ID: 1, Role: RoleUser}.RequireAtLeast(RoleAdmin), ErrUnauthorized)
	assert.NoError(t, Caller{ID: 1, Role: RolePoster}.RequireAtLeast(RolePoster))
}
