package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "test-secret")

	token, err := GenerateAccessToken(7)
	require.NoError(t, err)

	userID, err := ParseUserID(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
}

func TestParseUserIDRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "test-secret")

	token, err := GenerateAccessToken(7)
	require.NoError(t, err)

	_, err = ParseUserID(token, []byte("another-secret"))
	assert.Error(t, err)
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPasswordHash("hunter22", hash))
	assert.False(t, CheckPasswordHash("hunter23", hash))
}

func TestGenerateRandomToken(t *testing.T) {
	token := GenerateRandomToken(6)
	assert.Len(t, token, 6)
	assert.NotEqual(t, token, GenerateRandomToken(6))
}
