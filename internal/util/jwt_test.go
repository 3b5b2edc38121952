package util

import (
	"errors"
	"testing"
	"time"

	"lms_backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{
		Name:  "eve",
		Email: "eve@example.com",
		Role:  model.Admin,
	}
	user.ID = 7

	token, err := GenerateJWT(user, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, model.Admin, claims.Role)
	assert.Equal(t, "eve@example.com", claims.Email)
}

func TestParseJWTExpired(t *testing.T) {
	user := &model.User{Email: "eve@example.com", Role: model.Employee}
	user.ID = 7

	token, err := GenerateJWT(user, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseJWTWrongSecret(t *testing.T) {
	user := &model.User{Email: "eve@example.com", Role: model.Employee}
	user.ID = 7

	token, err := GenerateJWT(user, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseJWTGarbage(t *testing.T) {
	_, err := ParseJWT("not.a.token", "secret")
	assert.Error(t, err)
}
