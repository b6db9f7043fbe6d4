package model

import "time"

// User represents an identity as stored in the `users` table. The
// password is never stored in plain form: PasswordHash is a bcrypt
// digest of the password concatenated with the per-user Salt.
//
// A user holds at most one active refresh token at a time. The raw
// token is returned to the client once; only its SHA-256 hash is
// persisted. Issuing a new token overwrites the previous hash, which
// gives single-active-session semantics.
//
// Fields:
//  ID               – primary key identifier of the user.
//  Email            – unique email address (stored lower-cased).
//  PasswordHash     – bcrypt digest of password+salt.
//  Salt             – per-user random salt, hex encoded.
//  Role             – role name (USER, POSTER or ADMIN).
//  RefreshTokenHash – SHA-256 hex digest of the active refresh token; nil when logged out.
//  RefreshExpiresAt – expiry of the active refresh token; nil when logged out.
//  CreatedAt        – timestamp of creation.
//  UpdatedAt        – timestamp of last update.
type User struct {
	ID               uint64     // users.id
	Email            string     // users.email
	PasswordHash     string     // users.password_hash
	Salt             string     // users.salt
	Role             string     // users.role
	RefreshTokenHash *string    // users.refresh_token_hash (nullable)
	RefreshExpiresAt *time.Time // users.refresh_expires_at (nullable)
	CreatedAt        time.Time  // users.created_at
	UpdatedAt        time.Time  // users.updated_at
}
