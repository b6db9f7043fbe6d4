package auth

// Caller identifies the authenticated identity behind the current
// request. It is resolved once by the JWT middleware and passed as a
// plain value into every operation that needs it; no operation reads
// ambient request state.
type Caller struct {
	ID   uint64
	Role Role
}

// IsZero reports whether no identity was resolved for the request.
func (c Caller) IsZero() bool {
	return c.ID == 0
}

// RequireAtLeast fails with ErrUnauthenticated when no identity is
// present and with ErrUnauthorized when the caller's role is below the
// required tier.
func (c Caller) RequireAtLeast(min Role) error {
	if c.IsZero() {
		return ErrUnauthenticated
	}
	if !c.Role.HasAtLeast(min) {
		return ErrUnauthorized
	}
	return nil
}
