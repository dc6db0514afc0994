package repayment

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

// CreateRepayment godoc
// @Summary Record a repayment against an active loan
// @Description Rejects amounts above the remaining principal; paying the exact principal closes the loan
// @Tags repayment
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body CreateRepaymentInput true "Repayment Input"
// @Success 201 {object} utils.Response{data=repayment.RepaymentResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /repayments [post]
func CreateRepayment(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	var input CreateRepaymentInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	l, err := services.GetLoan(input.LoanID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if u.Role == models.UserRoleCustomer && l.UserID != u.ID {
		c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Forbidden"))
		return
	}

	r, err := services.CreateRepayment(input.LoanID, input.Amount, input.Method, input.Reference)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Repayment recorded successfully", NewRepaymentResponse(r)))
}

// ListLoanRepayments godoc
// @Summary List repayments for a loan
// @Tags repayment
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=repayment.PagedRepayments}
// @Failure 404 {object} utils.Response
// @Router /loans/{id}/repayments [get]
func ListLoanRepayments(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	loanID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid ID"))
		return
	}

	l, err := services.GetLoan(uint(loanID))
	if err != nil {
		respond.Error(c, err)
		return
	}
	if u.Role == models.UserRoleCustomer && l.UserID != u.ID {
		c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Forbidden"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	repayments, total, err := services.FindLoanRepayments(uint(loanID), page, limit)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Repayments retrieved successfully", PagedRepayments{
		Items: NewRepaymentResponses(repayments),
		Total: total,
		Page:  page,
		Limit: limit,
	}))
}

// GetRepayment godoc
// @Summary Get a repayment
// @Tags repayment
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=repayment.RepaymentResponse}
// @Failure 404 {object} utils.Response
// @Router /repayments/{id} [get]
func GetRepayment(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid ID"))
		return
	}

	r, err := services.GetRepayment(uint(id))
	if err != nil {
		respond.Error(c, err)
		return
	}

	if u.Role == models.UserRoleCustomer {
		l, err := services.GetLoan(r.LoanID)
		if err != nil || l.UserID != u.ID {
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Forbidden"))
			return
		}
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Repayment retrieved successfully", NewRepaymentResponse(r)))
}
