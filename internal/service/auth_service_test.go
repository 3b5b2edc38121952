package service

import (
	"testing"
	"time"

	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg), db
}

func createLoginUser(t *testing.T, db *gorm.DB, email, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &model.User{
		Name:     "eve",
		Email:    email,
		Password: string(hash),
		Role:     model.Employee,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestLogin(t *testing.T) {
	svc, db := newAuthService(t)
	user := createLoginUser(t, db, "eve@example.com", "correct horse")

	token, got, err := svc.Login("eve@example.com", "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, got.ID)

	claims, err := util.ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.Employee, claims.Role)
}

func TestLoginFailures(t *testing.T) {
	svc, db := newAuthService(t)
	createLoginUser(t, db, "eve@example.com", "correct horse")

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "eve@example.com", password: "battery staple"},
		{name: "unknown email", email: "mallory@example.com", password: "correct horse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(tt.email, tt.password)
			// Both failure modes return the same error.
			assert.ErrorIs(t, err, util.ErrInvalidCredentials)
		})
	}
}
