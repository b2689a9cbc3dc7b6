package jwt

import (
	"Go-Pantry-Tracker/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserToken(t *testing.T) {
	svc := NewJWTService("secret")

	token := svc.GenerateTokenUser("user-1", domain.RoleUser)
	id, role, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
	assert.Equal(t, domain.RoleUser, role)

	_, _, err = NewJWTService("other").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, _, err = svc.GetUserIDByToken("garbage")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestForgetPasswordToken(t *testing.T) {
	svc := NewJWTService("secret")

	token, err := svc.GenerateTokenForgetPassword(map[string]any{"email": "a@b.c"}, time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateTokenForgetPassword(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", claims["email"])
	assert.Equal(t, issuer, claims["iss"])

	expired, err := svc.GenerateTokenForgetPassword(map[string]any{"email": "a@b.c"}, -time.Hour)
	require.NoError(t, err)
	_, err = svc.ValidateTokenForgetPassword(expired)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
