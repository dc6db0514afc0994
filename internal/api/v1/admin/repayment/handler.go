package repayment

import (
	"net/http"
	"strconv"

	"microfinance-backend/internal/api/v1/common/respond"
	v1repayment "microfinance-backend/internal/api/v1/repayment"
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

// ReverseRepayment godoc
// @Summary Reverse a successful repayment
// @Description Restores the loan principal and marks the repayment FAILED
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=repayment.RepaymentResponse}
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/repayments/{id}/reverse [post]
func ReverseRepayment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid ID"))
		return
	}

	r, err := services.ReverseRepayment(uint(id), actorID(c))
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Repayment reversed successfully", v1repayment.NewRepaymentResponse(r)))
}
