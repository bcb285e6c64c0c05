package auth

import (
	"testing"
	"time"

	"forge/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func testClaims(subject string) Claims {
	return Claims{
		Email: "dev@example.com",
		Role:  "customer",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    "idp.example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestParseIdentityToken(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", Issuer: "idp.example.com"}

	claims, err := ParseIdentityToken(cfg, mintToken(t, "test-secret", testClaims("user-1")))
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "dev@example.com", claims.Email)
}

func TestParseIdentityTokenRejectsWrongSecret(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", Issuer: "idp.example.com"}

	_, err := ParseIdentityToken(cfg, mintToken(t, "other-secret", testClaims("user-1")))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseIdentityTokenRejectsWrongIssuer(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", Issuer: "idp.example.com"}

	c := testClaims("user-1")
	c.Issuer = "someone-else"
	_, err := ParseIdentityToken(cfg, mintToken(t, "test-secret", c))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseIdentityTokenRejectsMissingSubject(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", Issuer: "idp.example.com"}

	_, err := ParseIdentityToken(cfg, mintToken(t, "test-secret", testClaims("")))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseIdentityTokenRejectsExpired(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", Issuer: "idp.example.com"}

	c := testClaims("user-1")
	c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	_, err := ParseIdentityToken(cfg, mintToken(t, "test-secret", c))
	assert.ErrorIs(t, err, ErrInvalidToken)
}
