package utils

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// CreateSalt returns a fresh random salt, hex encoded. Each user gets
// their own salt at sign-up.
func CreateSalt() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword returns the bcrypt hash of password+salt using the given cost.
func HashPassword(plain, salt string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain+salt), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares a stored bcrypt hash against a plain
// password and its salt. bcrypt performs the comparison in constant time.
func VerifyPassword(hash, plain, salt string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain+salt)) == nil
}
