package auth

// Role names a privilege tier. Tiers are ordered USER < POSTER < ADMIN
// and a higher role keeps every capability of the ones below it. The
// single exception is review ownership, which is checked against the
// caller's id regardless of role.
type Role string

const (
	RoleUser   Role = "USER"
	RolePoster Role = "POSTER"
	RoleAdmin  Role = "ADMIN"
)

// roleLevels orders the tiers. Unknown roles map to no level and fail
// every check.
var roleLevels = map[Role]int{
	RoleUser:   0,
	RolePoster: 1,
	RoleAdmin:  2,
}

// IsValid reports whether the role is one of the predefined tiers.
func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// HasAtLeast reports whether this role meets the required minimum tier.
// All role gating in the service goes through this comparison, so the
// hierarchy lives in exactly one place.
func (r Role) HasAtLeast(min Role) bool {
	level, ok := roleLevels[r]
	if !ok {
		return false
	}
	minLevel, ok := roleLevels[min]
	if !ok {
		return false
	}
	return level >= minLevel
}

// ParseRole safely parses a string into a Role.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.IsValid()
}
