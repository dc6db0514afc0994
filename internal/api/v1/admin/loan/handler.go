package loan

import (
	"net/http"
	"strconv"

	"microfinance-backend/internal/api/v1/common/respond"
	v1loan "microfinance-backend/internal/api/v1/loan"
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

// ListLoans godoc
// @Summary List all loans
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Filter by status"
// @Param userId query int false "Filter by user"
// @Success 200 {object} utils.Response{data=[]loan.LoanResponse}
// @Router /admin/loans [get]
func ListLoans(c *gin.Context) {
	var filter services.LoanFilter
	if s := c.Query("status"); s != "" {
		parsed, err := models.ParseLoanStatus(s)
		if err != nil {
			respond.Error(c, err)
			return
		}
		filter.Status = &parsed
	}
	if uidStr := c.Query("userId"); uidStr != "" {
		if uid, err := strconv.ParseUint(uidStr, 10, 32); err == nil {
			userID := uint(uid)
			filter.UserID = &userID
		}
	}

	loans, err := services.FindLoans(filter)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Loans retrieved successfully", v1loan.NewLoanResponses(loans)))
}

// ApproveLoan godoc
// @Summary Approve a pending loan
// @Description The approved amount overwrites the requested amount and principal; the due date becomes now plus the repayment period
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body ApproveLoanInput true "Approval Input"
// @Success 200 {object} utils.Response{data=loan.LoanResponse}
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/loans/{id}/approve [post]
func ApproveLoan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input ApproveLoanInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	l, err := services.ApproveLoan(id, input.ApprovedAmount, input.Notes, actorID(c))
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Loan approved successfully", v1loan.NewLoanResponse(l)))
}

// RejectLoan godoc
// @Summary Reject a pending loan
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body RejectLoanInput true "Rejection Input"
// @Success 200 {object} utils.Response{data=loan.LoanResponse}
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/loans/{id}/reject [post]
func RejectLoan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input RejectLoanInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	l, err := services.RejectLoan(id, input.Reason, actorID(c))
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Loan rejected", v1loan.NewLoanResponse(l)))
}

// DisburseLoan godoc
// @Summary Disburse an approved loan
// @Description Credits the approved amount to the target account through the ledger and activates the loan
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body DisburseLoanInput true "Disbursement Input"
// @Success 200 {object} utils.Response{data=loan.LoanResponse}
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/loans/{id}/disburse [post]
func DisburseLoan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input DisburseLoanInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	l, err := services.DisburseLoan(id, input.AccountID, actorID(c))
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Loan disbursed successfully", v1loan.NewLoanResponse(l)))
}

// CloseLoan godoc
// @Summary Close a fully repaid loan
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=loan.LoanResponse}
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/loans/{id}/close [post]
func CloseLoan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	l, err := services.CloseLoan(id, actorID(c))
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Loan closed successfully", v1loan.NewLoanResponse(l)))
}

// MarkDefaulted godoc
// @Summary Mark an active loan as defaulted
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=loan.LoanResponse}
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/loans/{id}/default [post]
func MarkDefaulted(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	l, err := services.MarkLoanDefaulted(id, actorID(c))
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Loan marked as defaulted", v1loan.NewLoanResponse(l)))
}
