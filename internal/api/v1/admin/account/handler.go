package account

import (
	"net/http"
	"strconv"

	v1account "microfinance-backend/internal/api/v1/account"
	"microfinance-backend/internal/api/v1/common/respond"
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

// UpdateStatus godoc
// @Summary Update an account's status
// @Description Moves an account between ACTIVE and FROZEN; CLOSED enforces the zero-balance rule
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body UpdateStatusInput true "Status Input"
// @Success 200 {object} utils.Response{data=account.AccountResponse}
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/accounts/{id}/status [patch]
func UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid ID"))
		return
	}

	var input UpdateStatusInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	a, err := services.UpdateAccountStatus(uint(id), input.Status, actorID(c))
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Account status updated successfully", v1account.NewAccountResponse(a)))
}
