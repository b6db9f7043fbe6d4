package utils // helpers for token creation and hashing

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a JWT is malformed or its signature
// does not verify. Simple expiry is NOT this error: an expired but
// well-signed token still yields claims through ClaimsIgnoringExpiry.
var ErrInvalidToken = errors.New("invalid token")

// AccessToken is a signed JWT access token along with its expiry.
// Access tokens are short-lived and carried in the Authorization
// header on protected endpoints.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// RefreshToken is a long-lived opaque token used to obtain new access
// tokens. The Raw value is returned to the client once; the database
// keeps only a SHA-256 hash of it.
type RefreshToken struct {
	Raw string
	Exp time.Time
}

// Claims is the decoded payload of an access token.
type Claims struct {
	Subject string // user id
	Role    string
}

// NewAccessToken builds and signs an HS256 JWT for a user. The token
// carries sub, role, iss, aud, exp and iat claims; issuer and audience
// are fixed per deployment and ttlSec controls the expiry window.
func NewAccessToken(secret, issuer, audience string, userID uint64, role string, ttlSec int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlSec) * time.Second)
	claims := jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", userID),
		"role": role,
		"iss":  issuer,
		"aud":  audience,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// NewRefreshToken returns a cryptographically random opaque token and
// its expiration time. The 48 random bytes give far more than the
// minimum 128 bits of entropy; ttlDays controls validity.
func NewRefreshToken(ttlDays int) (RefreshToken, error) {
	raw, err := randomHex(48) // 48 bytes -> 96 hex chars
	if err != nil {
		return RefreshToken{}, err
	}
	return RefreshToken{
		Raw: raw,
		Exp: time.Now().UTC().Add(time.Duration(ttlDays) * 24 * time.Hour),
	}, nil
}

// ParseClaims validates a token fully (signature and expiry) and
// returns its claims.
func ParseClaims(raw, secret string) (Claims, error) {
	return parseClaims(raw, secret, false)
}

// ClaimsIgnoringExpiry verifies the signature of a token but
// deliberately accepts an expired one. A refresh call needs this to
// recover the caller's identity from a stale access token. Tampered or
// malformed tokens still fail with ErrInvalidToken.
func ClaimsIgnoringExpiry(raw, secret string) (Claims, error) {
	return parseClaims(raw, secret, true)
}

func parseClaims(raw, secret string, ignoreExpiry bool) (Claims, error) {
	opts := []jwt.ParserOption{}
	if ignoreExpiry {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		if !ignoreExpiry && errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, err
		}
		return Claims{}, ErrInvalidToken
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	sub, _ := mc["sub"].(string)
	role, _ := mc["role"].(string)
	if sub == "" || role == "" {
		return Claims{}, ErrInvalidToken
	}
	return Claims{Subject: sub, Role: role}, nil
}

// HashRefreshRaw returns the SHA-256 hash of a raw refresh token as a
// hex string. Only the hash ever reaches the database, so a leaked
// users table cannot be replayed into new sessions.
func HashRefreshRaw(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// randomHex returns a hex string built from n bytes of secure random data.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
