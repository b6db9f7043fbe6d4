package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestCreateSalt_Unique(t *testing.T) {
	t.Parallel()

	a, err := CreateSalt()
	require.NoError(t, err)
	b, err := CreateSalt()
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	salt, err := CreateSalt()
	require.NoError(t, err)

	hash, err := HashPassword("hunter2", salt, bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", hash)

	assert.True(t, VerifyPassword(hash, "hunter2", salt))
	assert.False(t, VerifyPassword(hash, "hunter3", salt))
	assert.False(t, VerifyPassword(hash, "hunter2", "wrong-salt"))
}

func TestHashPassword_SaltChangesDigest(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same-password", "salt-one", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("same-password", "salt-two", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.False(t, VerifyPassword(h1, "same-password", "salt-two"))
}
