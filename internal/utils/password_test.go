package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordFreshSaltPerCall(t *testing.T) {
	h1, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	// two digests of the same password must differ yet both verify
	assert.NotEqual(t, h1, h2)
	assert.True(t, VerifyPassword(h1, "secret"))
	assert.True(t, VerifyPassword(h2, "secret"))
}

func TestVerifyPasswordMismatch(t *testing.T) {
	h, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.False(t, VerifyPassword(h, "wrong"))
	assert.False(t, VerifyPassword("not-a-bcrypt-digest", "secret"))
}
