package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	service := NewJWTService("test-secret", 15*time.Minute)

	token, err := service.GenerateJWT("alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestValidateToken_Expired(t *testing.T) {
	service := NewJWTService("test-secret", -1*time.Minute)

	token, err := service.GenerateJWT("alice")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service := NewJWTService("test-secret", 15*time.Minute)
	other := NewJWTService("other-secret", 15*time.Minute)

	token, err := service.GenerateJWT("alice")
	assert.NoError(t, err)

	claims, err := other.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Malformed(t *testing.T) {
	service := NewJWTService("test-secret", 15*time.Minute)

	claims, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTTL(t *testing.T) {
	service := NewJWTService("test-secret", 1440*time.Minute)
	assert.Equal(t, 1440*time.Minute, service.TTL())
}
