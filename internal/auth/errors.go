// Package auth implements the session lifecycle (sign-up, sign-in,
// refresh rotation, revocation) and the role model shared by every
// guarded operation in the service.
package auth

import (
	"errors"

	"github.com/iliyamo/tvshow-catalog/internal/utils"
)

// ErrInvalidToken mirrors the token-level error so callers only need
// this package to classify auth failures. Covers malformed and
// tampered tokens, not plain expiry.
var ErrInvalidToken = utils.ErrInvalidToken

// ErrInvalidCredentials is returned by SignIn for an unknown email or
// a wrong password. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUnauthenticated is returned when an operation requires a resolved
// caller identity and none is present.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrUnauthorized is returned when the caller's role is below the tier
// an operation requires, or when ownership rules reject the caller.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRefreshMismatch is returned when the presented refresh token does
// not match the stored one, including the case where a concurrent
// rotation already replaced it.
var ErrRefreshMismatch = errors.New("refresh token mismatch")

// ErrRefreshExpired is returned when the stored refresh token matches
// but its expiry has passed.
var ErrRefreshExpired = errors.New("refresh token expired")
