package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("testpass123")
	require.NoError(t, err)
	assert.NotEqual(t, "testpass123", hash)
	assert.True(t, CheckPasswordHash("testpass123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestNormalizeEmail(t *testing.T) {
	tests := map[string]string{
		"test1@EXAMPLE.com":    "test1@example.com",
		"Test2@Example.com":    "Test2@example.com",
		"TEST3@EXAMPLE.COM":    "TEST3@example.com",
		" test4@example.COM ": "test4@example.com",
		"nodomain":             "nodomain",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeEmail(in), in)
	}
}

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("s3cret")
	tok, err := GenerateJWT(secret, 7, "user@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestParseJWT_Rejects(t *testing.T) {
	secret := []byte("s3cret")

	expired, err := GenerateJWT(secret, 7, "user@example.com", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(secret, expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	other, err := GenerateJWT([]byte("other"), 7, "user@example.com", time.Hour)
	require.NoError(t, err)
	_, err = ParseJWT(secret, other)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseJWT(secret, "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
