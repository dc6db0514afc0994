package user

import (
	"net/http"

	"microfinance-backend/internal/api/v1/common/respond"
	"microfinance-backend/internal/models"
	"microfinance-backend/internal/services"
	"microfinance-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// CurrentUser godoc
// @Summary Get current user
// @Description Get the authenticated user's profile
// @Tags user
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=user.UserResponse}
// @Failure 401 {object} utils.Response
// @Router /users/me [get]
func CurrentUser(c *gin.Context) {
	v, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}
	u := v.(models.User)

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User information retrieved successfully", NewUserResponse(&u)))
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Update the authenticated user's name, phone or password
// @Tags user
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=user.UserResponse}
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /users/me [patch]
func UpdateProfile(c *gin.Context) {
	v, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}
	u := v.(models.User)

	var input UpdateProfileInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Phone != "" {
		updates["phone"] = input.Phone
	}
	if input.Password != "" {
		updates["password"] = input.Password
	}

	updated, err := services.UpdateUser(u.ID, updates)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Profile updated successfully", NewUserResponse(updated)))
}
