package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")

	tok, err := svc.GenerateAccessToken("user-1", "a@b.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	p, err := svc.ParseAndValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", p.ID)
	assert.Equal(t, "a@b.com", p.Email)
	assert.Equal(t, "admin", p.Role)
}

func TestTokenWrongSecret(t *testing.T) {
	tok, err := NewTokenService("secret-a").GenerateAccessToken("u", "a@b.com", "user")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").ParseAndValidateToken(tok)
	assert.Error(t, err)
}

func TestTokenMalformed(t *testing.T) {
	svc := NewTokenService("test-secret")

	_, err := svc.ParseAndValidateToken("not-a-token")
	assert.Error(t, err)

	_, err = svc.ParseAndValidateToken("")
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService("test-secret")

	claims := jwt.MapClaims{
		"id":    "u",
		"email": "a@b.com",
		"role":  "user",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ParseAndValidateToken(expired)
	assert.Error(t, err)
}

func TestTokenMissingClaims(t *testing.T) {
	svc := NewTokenService("test-secret")

	claims := jwt.MapClaims{
		"id":  "u",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ParseAndValidateToken(tok)
	assert.Error(t, err)
}
