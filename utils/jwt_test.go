package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamevault/config"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	config.InitConfig()

	token, err := GenerateJWT(42, "manager@gamevault.local", "manager", time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "manager@gamevault.local", claims.Email)
	assert.Equal(t, "manager", claims.Role)
}

func TestValidateExpiredJWT(t *testing.T) {
	config.InitConfig()

	token, err := GenerateJWT(42, "manager@gamevault.local", "manager", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	config.InitConfig()

	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPasswordHash("hunter22", hash))
	assert.False(t, CheckPasswordHash("hunter23", hash))
}
