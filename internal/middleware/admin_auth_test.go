package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"microfinance-backend/internal/database"
	"microfinance-backend/internal/models"
	"microfinance-backend/internal/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func setupTestConfig() {
	os.Setenv("JWT_SECRET", "test_secret")
	os.Setenv("DB_HOST", "localhost")
}

func setupMockRedis() *miniredis.Miniredis {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	database.RedisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr
}

func generateTestToken(role string, expired bool) string {
	claims := jwt.MapClaims{
		"user_id": 1,
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	if expired {
		claims["exp"] = time.Now().Add(-time.Hour).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tString, _ := token.SignedString([]byte("test_secret"))
	return tString
}

func TestAdminAuthMiddleware(t *testing.T) {
	setupTestConfig()
	mr := setupMockRedis()
	defer mr.Close()

	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/admin/ping", AdminAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.NewSuccessResponse("pong", nil))
	})

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			authHeader: "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer " + generateTestToken(string(models.UserRoleAdmin), true),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "customer role",
			authHeader: "Bearer " + generateTestToken(string(models.UserRoleCustomer), false),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin role",
			authHeader: "Bearer " + generateTestToken(string(models.UserRoleAdmin), false),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/admin/ping", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAdminAuthMiddlewareRevokedToken(t *testing.T) {
	setupTestConfig()
	mr := setupMockRedis()
	defer mr.Close()

	gin.SetMode(gin.TestMode)

	token := generateTestToken(string(models.UserRoleAdmin), false)
	database.RedisClient.Set(database.Ctx, "denylist:"+token, "true", time.Hour)

	router := gin.New()
	router.GET("/admin/ping", AdminAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.NewSuccessResponse("pong", nil))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp utils.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Token has been revoked", resp.Message)
}
