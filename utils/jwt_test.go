package utils

import (
	"testing"
	"time"

	"sevasetu/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withSecret(t *testing.T, secret string) {
	t.Helper()
	prev := config.AppConfig.JWTSecret
	config.AppConfig.JWTSecret = secret
	t.Cleanup(func() { config.AppConfig.JWTSecret = prev })
}

func TestGenerateAndExtractClaims(t *testing.T) {
	withSecret(t, "test-secret")

	token, err := GenerateToken("admin", AdminRole, time.Minute)
	require.NoError(t, err)

	sub, role, err := ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", sub)
	assert.Equal(t, AdminRole, role)
}

func TestExtractClaimsRejectsExpiredToken(t *testing.T) {
	withSecret(t, "test-secret")

	token, err := GenerateToken("admin", AdminRole, -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractClaims(token)
	assert.Error(t, err)
}

func TestExtractClaimsRejectsForeignSignature(t *testing.T) {
	withSecret(t, "first")
	token, err := GenerateToken("admin", AdminRole, time.Minute)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "second"
	_, _, err = ExtractClaims(token)
	assert.Error(t, err)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	withSecret(t, "")

	_, err := GenerateToken("admin", AdminRole, time.Minute)
	assert.Error(t, err)
}
