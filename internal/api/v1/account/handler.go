package account

import (
	"net/http"
	"strconv"

	"microfinance-backend/internal/api/v1/common/respond"
	"microfinance-backend/internal/models"
	"microfinance-backend/internal/services"
	"microfinance-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

func currentUser(c *gin.Context) (models.User, bool) {
	v, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid ID"))
		return 0, false
	}
	return uint(id), true
}

// CreateAccount godoc
// @Summary Open a new account
// @Tags account
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} utils.Response{data=account.AccountResponse}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /accounts [post]
func CreateAccount(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	var input CreateAccountInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	a, err := services.CreateAccount(u.ID, input.AccountType)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Account created successfully", NewAccountResponse(a)))
}

// ListAccounts godoc
// @Summary List the caller's accounts
// @Tags account
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Filter by status"
// @Success 200 {object} utils.Response{data=[]account.AccountResponse}
// @Router /accounts [get]
func ListAccounts(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	var status *models.AccountStatus
	if s := c.Query("status"); s != "" {
		parsed, err := models.ParseAccountStatus(s)
		if err != nil {
			respond.Error(c, err)
			return
		}
		status = &parsed
	}

	accounts, err := services.FindUserAccounts(u.ID, status)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Accounts retrieved successfully", NewAccountResponses(accounts)))
}

// GetAccount godoc
// @Summary Get an account
// @Tags account
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=account.AccountResponse}
// @Failure 404 {object} utils.Response
// @Router /accounts/{id} [get]
func GetAccount(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	a, err := services.GetAccount(id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if u.Role == models.UserRoleCustomer && a.UserID != u.ID {
		c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Forbidden"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Account retrieved successfully", NewAccountResponse(a)))
}

// CloseAccount godoc
// @Summary Close an account
// @Description Close an account; the balance must be exactly zero
// @Tags account
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=account.AccountResponse}
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /accounts/{id}/close [post]
func CloseAccount(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	a, err := services.GetAccount(id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if u.Role == models.UserRoleCustomer && a.UserID != u.ID {
		c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Forbidden"))
		return
	}

	closed, err := services.CloseAccount(id, u.ID)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Account closed successfully", NewAccountResponse(closed)))
}
