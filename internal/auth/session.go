package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/iliyamo/tvshow-catalog/internal/model"
	"github.com/iliyamo/tvshow-catalog/internal/repository"
	"github.com/iliyamo/tvshow-catalog/internal/utils"
)

// IdentityStore is the persistence surface the session manager needs.
// *repository.UserRepo implements it against MySQL; tests substitute an
// in-memory fake.
type IdentityStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uint64) (*model.User, error)
	ListByRole(ctx context.Context, role string) ([]model.User, error)
	Create(ctx context.Context, u *model.User) error
	// SetRefreshToken unconditionally stores a new refresh token hash
	// and expiry, overwriting whatever was there (sign-in).
	SetRefreshToken(ctx context.Context, id uint64, hash string, exp time.Time) error
	// RotateRefreshToken swaps oldHash for newHash atomically. It
	// returns repository.ErrStaleRefresh when the stored hash no longer
	// equals oldHash, which makes concurrent rotations lose
	// deterministically instead of clobbering each other.
	RotateRefreshToken(ctx context.Context, id uint64, oldHash, newHash string, exp time.Time) error
	ClearRefreshToken(ctx context.Context, id uint64) error
	Delete(ctx context.Context, id uint64) error
}

// Config carries the token and hashing parameters for the Manager.
// The role secrets map sign-up secrets to tiers; they are bound from
// configuration, never embedded in code.
type Config struct {
	JWTSecret        string
	Issuer           string
	Audience         string
	AccessTTLSec     int
	RefreshTTLDays   int
	BcryptCost       int
	UserRoleSecret   string
	PosterRoleSecret string
	AdminRoleSecret  string
}

// TokenPair is the result of a successful sign-in or refresh.
type TokenPair struct {
	Access  utils.AccessToken
	Refresh utils.RefreshToken
}

// Manager orchestrates the per-identity session state machine:
// LoggedOut -> Active on sign-in, Active -> Active on refresh (token
// rotated), Active -> LoggedOut on revoke or on a refresh attempt with
// a stale, expired or mismatched token.
type Manager struct {
	store IdentityStore
	cfg   Config
}

// NewManager constructs a session Manager over the given store.
func NewManager(store IdentityStore, cfg Config) *Manager {
	return &Manager{store: store, cfg: cfg}
}

// roleForSecret maps a sign-up role secret to a tier. An unknown or
// empty secret yields the lowest tier rather than an error.
func (m *Manager) roleForSecret(secret string) Role {
	switch secret {
	case m.cfg.AdminRoleSecret:
		return RoleAdmin
	case m.cfg.PosterRoleSecret:
		return RolePoster
	case m.cfg.UserRoleSecret:
		return RoleUser
	default:
		return RoleUser
	}
}

// CreateUser registers a new identity. The email must not be in use.
// The caller's tier is selected by matching roleSecret against the
// configured secrets; anything unrecognized defaults to USER.
func (m *Manager) CreateUser(ctx context.Context, email, password, roleSecret string) (*model.User, error) {
	salt, err := utils.CreateSalt()
	if err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(password, salt, m.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		Email:        email,
		PasswordHash: hash,
		Salt:         salt,
		Role:         string(m.roleForSecret(roleSecret)),
	}
	if err := m.store.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SignIn verifies credentials and starts a session. On success it
// issues a fresh token pair and persists the refresh token hash and
// expiry on the identity, overwriting any previous token. Any other
// active session for this identity is invalidated by that overwrite.
func (m *Manager) SignIn(ctx context.Context, email, password string) (*TokenPair, error) {
	u, err := m.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password, u.Salt) {
		return nil, ErrInvalidCredentials
	}

	pair, err := m.issuePair(u.ID, Role(u.Role))
	if err != nil {
		return nil, err
	}
	if err := m.store.SetRefreshToken(ctx, u.ID, utils.HashRefreshRaw(pair.Refresh.Raw), pair.Refresh.Exp); err != nil {
		return nil, err
	}
	return pair, nil
}

// Refresh rotates a session. The access token may be expired but must
// be well-signed; its subject identifies the session to rotate. The
// presented refresh token must hash to the stored value and must not
// be past its expiry. On success both tokens are replaced and the old
// refresh token is unusable immediately.
func (m *Manager) Refresh(ctx context.Context, accessToken, refreshToken string) (*TokenPair, error) {
	claims, err := utils.ClaimsIgnoringExpiry(accessToken, m.cfg.JWTSecret)
	if err != nil {
		return nil, ErrInvalidToken
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	u, err := m.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrRefreshMismatch
		}
		return nil, err
	}

	presented := utils.HashRefreshRaw(refreshToken)
	if u.RefreshTokenHash == nil || *u.RefreshTokenHash != presented {
		return nil, ErrRefreshMismatch
	}
	if u.RefreshExpiresAt == nil || !time.Now().UTC().Before(*u.RefreshExpiresAt) {
		return nil, ErrRefreshExpired
	}

	pair, err := m.issuePair(u.ID, Role(u.Role))
	if err != nil {
		return nil, err
	}
	err = m.store.RotateRefreshToken(ctx, u.ID, presented, utils.HashRefreshRaw(pair.Refresh.Raw), pair.Refresh.Exp)
	if err != nil {
		if errors.Is(err, repository.ErrStaleRefresh) {
			// A concurrent refresh won the swap; this caller's token is gone.
			return nil, ErrRefreshMismatch
		}
		return nil, err
	}
	return pair, nil
}

// Revoke ends the caller's own session by clearing the stored refresh
// token. Access tokens already issued stay valid until their own short
// expiry; there is no immediate access-token invalidation.
func (m *Manager) Revoke(ctx context.Context, caller Caller) error {
	if caller.IsZero() {
		return ErrUnauthenticated
	}
	return m.store.ClearRefreshToken(ctx, caller.ID)
}

// RevokeUser lets an admin end another identity's session. Unknown
// targets surface repository.ErrUserNotFound.
func (m *Manager) RevokeUser(ctx context.Context, caller Caller, targetID uint64) error {
	if err := caller.RequireAtLeast(RoleAdmin); err != nil {
		return err
	}
	if _, err := m.store.GetByID(ctx, targetID); err != nil {
		return err
	}
	return m.store.ClearRefreshToken(ctx, targetID)
}

// ListUsers returns the identities holding the given tier. Admin only.
func (m *Manager) ListUsers(ctx context.Context, caller Caller, role Role) ([]model.User, error) {
	if err := caller.RequireAtLeast(RoleAdmin); err != nil {
		return nil, err
	}
	return m.store.ListByRole(ctx, string(role))
}

// Self returns the caller's own identity record.
func (m *Manager) Self(ctx context.Context, caller Caller) (*model.User, error) {
	if caller.IsZero() {
		return nil, ErrUnauthenticated
	}
	return m.store.GetByID(ctx, caller.ID)
}

// GetUser returns a single identity by id. Admin only.
func (m *Manager) GetUser(ctx context.Context, caller Caller, id uint64) (*model.User, error) {
	if err := caller.RequireAtLeast(RoleAdmin); err != nil {
		return nil, err
	}
	return m.store.GetByID(ctx, id)
}

// DeleteUser removes an identity. Admin only. The store nulls the
// reviewer reference on the identity's reviews; the reviews themselves
// persist and become frozen against further mutation.
func (m *Manager) DeleteUser(ctx context.Context, caller Caller, id uint64) error {
	if err := caller.RequireAtLeast(RoleAdmin); err != nil {
		return err
	}
	return m.store.Delete(ctx, id)
}

func (m *Manager) issuePair(id uint64, role Role) (*TokenPair, error) {
	access, err := utils.NewAccessToken(m.cfg.JWTSecret, m.cfg.Issuer, m.cfg.Audience, id, string(role), m.cfg.AccessTTLSec)
	if err != nil {
		return nil, err
	}
	refresh, err := utils.NewRefreshToken(m.cfg.RefreshTTLDays)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}
