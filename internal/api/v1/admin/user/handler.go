package user

import (
	"net/http"
	"strconv"

	"microfinance-backend/internal/api/v1/common/respond"
	v1user "microfinance-backend/internal/api/v1/user"
	"microfinance-backend/internal/models"
	"microfinance-backend/internal/services"
	"microfinance-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

func actorID(c *gin.Context) uint {
	if v, exists := c.Get("user"); exists {
		if u, ok := v.(models.User); ok {
			return u.ID
		}
	}
	return 0
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid ID"))
		return 0, false
	}
	return uint(id), true
}

// ListUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Filter by status"
// @Param role query string false "Filter by role"
// @Param search query string false "Match against name or email"
// @Success 200 {object} utils.Response{data=user.PagedUsers}
// @Router /admin/users [get]
func ListUsers(c *gin.Context) {
	filter := services.UserFilter{Page: 1, Limit: 20, Search: c.Query("search")}

	if p, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && p > 0 {
		filter.Page = p
	}
	if l, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil && l > 0 && l <= 100 {
		filter.Limit = l
	}
	if s := c.Query("status"); s != "" {
		parsed, err := models.ParseUserStatus(s)
		if err != nil {
			respond.Error(c, err)
			return
		}
		filter.Status = &parsed
	}
	if r := c.Query("role"); r != "" {
		parsed, err := models.ParseUserRole(r)
		if err != nil {
			respond.Error(c, err)
			return
		}
		filter.Role = &parsed
	}

	users, total, err := services.FindUsers(filter)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Users retrieved successfully", PagedUsers{
		Items: newUserResponses(users),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}))
}

// CreateUser godoc
// @Summary Create a user with explicit role and status
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body CreateUserInput true "User Input"
// @Success 201 {object} utils.Response{data=user.UserResponse}
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/users [post]
func CreateUser(c *gin.Context) {
	var input CreateUserInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	u, err := services.CreateUser(input.Name, input.Email, input.Phone, input.Password, input.Role, input.Status)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("User created successfully", v1user.NewUserResponse(u)))
}

// GetUser godoc
// @Summary Get a user
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=user.UserResponse}
// @Failure 404 {object} utils.Response
// @Router /admin/users/{id} [get]
func GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	u, err := services.FindUserByID(id)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User retrieved successfully", v1user.NewUserResponse(&u)))
}

// ApproveUser godoc
// @Summary Approve a pending user
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=user.UserResponse}
// @Failure 404 {object} utils.Response
// @Router /admin/users/{id}/approve [post]
func ApproveUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	u, err := services.ApproveUser(id, actorID(c))
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User approved successfully", v1user.NewUserResponse(u)))
}

// SuspendUser godoc
// @Summary Suspend a user
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body ReasonInput true "Suspension reason"
// @Success 200 {object} utils.Response{data=user.UserResponse}
// @Failure 404 {object} utils.Response
// @Router /admin/users/{id}/suspend [post]
func SuspendUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input ReasonInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	u, err := services.SuspendUser(id, input.Reason, actorID(c))
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User suspended successfully", v1user.NewUserResponse(u)))
}

// BanUser godoc
// @Summary Ban a user
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body ReasonInput true "Ban reason"
// @Success 200 {object} utils.Response{data=user.UserResponse}
// @Failure 404 {object} utils.Response
// @Router /admin/users/{id}/ban [post]
func BanUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input ReasonInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	u, err := services.BanUser(id, input.Reason, actorID(c))
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User banned successfully", v1user.NewUserResponse(u)))
}

// DeleteUser godoc
// @Summary Soft-delete a user
// @Description Marks the user INACTIVE; records are never physically removed
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/users/{id} [delete]
func DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := services.DeleteUser(id, actorID(c)); err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User deactivated successfully", nil))
}
