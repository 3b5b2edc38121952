package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

func testToken(t *testing.T, role model.UserRole, ttl time.Duration) string {
	t.Helper()
	user := &model.User{Email: "eve@example.com", Role: role}
	user.ID = 7
	token, err := util.GenerateJWT(user, "test-secret", ttl)
	require.NoError(t, err)
	return token
}

func newAuthRouter(cfg *config.Config, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware(cfg)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testConfig()
	router := newAuthRouter(cfg)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no token",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "No token provided",
		},
		{
			name:       "malformed token",
			header:     "Bearer not.a.token",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid token",
		},
		{
			name:       "expired token",
			header:     "Bearer " + testToken(t, model.Employee, -time.Minute),
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token has expired",
		},
		{
			name:       "valid token",
			header:     "Bearer " + testToken(t, model.Employee, time.Hour),
			wantStatus: http.StatusOK,
			wantBody:   `"userId":7`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	cfg := testConfig()
	router := newAuthRouter(cfg, RoleMiddleware(model.Admin))

	tests := []struct {
		name       string
		role       model.UserRole
		wantStatus int
	}{
		{name: "admin allowed", role: model.Admin, wantStatus: http.StatusOK},
		{name: "employee forbidden", role: model.Employee, wantStatus: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+testToken(t, tt.role, time.Hour))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
