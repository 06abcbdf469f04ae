package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testJWTSecret = "test-jwt-secret-key-for-unit-tests"
	testAddress   = "0x90F8bf6A479f320ead074411a4B0e7944Ea8c9C1"
)

func TestJWTSessionService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTSessionService(testJWTSecret, 24*time.Hour, "test-issuer")

	tokenStr, expiresAt, err := svc.Generate(testAddress)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenStr)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.Validate(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, testAddress, claims.Address)
}

func TestJWTSessionService_ExpiredToken(t *testing.T) {
	// Token with -1 hour expiry = already expired
	svc := NewJWTSessionService(testJWTSecret, -1*time.Hour, "test-issuer")

	tokenStr, _, err := svc.Generate(testAddress)
	require.NoError(t, err)

	_, err = svc.Validate(tokenStr)
	assert.Error(t, err, "expired token should fail validation")
}

func TestJWTSessionService_InvalidSignature(t *testing.T) {
	svc1 := NewJWTSessionService("secret-1", 24*time.Hour, "issuer")
	svc2 := NewJWTSessionService("secret-2", 24*time.Hour, "issuer")

	tokenStr, _, err := svc1.Generate(testAddress)
	require.NoError(t, err)

	_, err = svc2.Validate(tokenStr)
	assert.Error(t, err, "token signed with different secret should fail")
}
