package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"microfinance-backend/internal/api/v1/auth"
	"microfinance-backend/internal/api/v1/user"
	"microfinance-backend/internal/database"
	"microfinance-backend/internal/models"
	"microfinance-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{}, &models.Notification{})
	if err := db.AutoMigrate(&models.User{}, &models.Notification{}); err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
	database.RedisClient = nil
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	auth.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	setupTestDB()
	router := setupRouter()

	w := postJSON(router, "/api/v1/auth/register", gin.H{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "hunter2222",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Status int               `json:"status"`
		Data   user.UserResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PENDING", resp.Data.Status)
	assert.Equal(t, "CUSTOMER", resp.Data.Role)

	// Duplicate email conflicts.
	w = postJSON(router, "/api/v1/auth/register", gin.H{
		"name":     "Alice Again",
		"email":    "alice@example.com",
		"password": "hunter2222",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Short password fails validation.
	w = postJSON(router, "/api/v1/auth/register", gin.H{
		"name":     "Bob",
		"email":    "bob@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	setupTestDB()
	os.Setenv("JWT_SECRET", "test_secret")
	router := setupRouter()

	w := postJSON(router, "/api/v1/auth/register", gin.H{
		"name":     "Carol",
		"email":    "carol@example.com",
		"password": "hunter2222",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Pending users cannot log in.
	w = postJSON(router, "/api/v1/auth/login", gin.H{
		"email":    "carol@example.com",
		"password": "hunter2222",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	database.DB.Model(&models.User{}).Where("email = ?", "carol@example.com").
		Update("status", models.UserStatusActive)

	w = postJSON(router, "/api/v1/auth/login", gin.H{
		"email":    "carol@example.com",
		"password": "hunter2222",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status int               `json:"status"`
		Data   user.UserResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Token)

	claims, err := utils.ValidateToken(resp.Data.Token)
	assert.NoError(t, err)
	assert.Equal(t, string(models.UserRoleCustomer), claims["role"])

	// Wrong password is unauthorized.
	w = postJSON(router, "/api/v1/auth/login", gin.H{
		"email":    "carol@example.com",
		"password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
