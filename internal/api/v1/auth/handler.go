package auth

import (
	"net/http"
	"time"

	"microfinance-backend/internal/api/v1/common/respond"
	"microfinance-backend/internal/api/v1/user"
	"microfinance-backend/internal/services"
	"microfinance-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"max=20"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register godoc
// @Summary Register a new user
// @Description Register a new user; the account stays PENDING until an admin approves it
// @Tags auth
// @Accept json
// @Produce json
// @Param input body RegisterInput true "Register Input"
// @Success 201 {object} utils.Response{data=user.UserResponse}
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /auth/register [post]
func Register(c *gin.Context) {
	var input RegisterInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	u, err := services.RegisterUser(input.Name, input.Email, input.Phone, input.Password)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("User registered successfully, pending approval", user.NewUserResponse(u)))
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in a user
// @Description Authenticate with email and password; only ACTIVE users may log in
// @Tags auth
// @Accept json
// @Produce json
// @Param input body LoginInput true "Login Input"
// @Success 200 {object} utils.Response{data=user.UserResponse}
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var input LoginInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	token, u, err := services.LoginUser(input.Email, input.Password)
	if err != nil {
		respond.Error(c, err)
		return
	}

	resp := user.NewUserResponse(u)
	resp.Token = token
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged in successfully", resp))
}

// Logout godoc
// @Summary Log out a user
// @Description Invalidate the user's current token
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	tokenString, err := utils.ExtractToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, err.Error()))
		return
	}

	claims, err := utils.ValidateToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Invalid or expired token"))
		return
	}

	expiration := time.Hour * 72
	if exp, ok := claims["exp"].(float64); ok {
		until := time.Until(time.Unix(int64(exp), 0))
		if until > 0 {
			expiration = until
		}
	}

	if err := services.AddToDenylist(tokenString, expiration); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to revoke token"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged out successfully", nil))
}
