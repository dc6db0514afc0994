package loan

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

// CreateLoan godoc
// @Summary Request a loan
// @Description Submit a loan request; it stays PENDING until an admin approves or rejects it
// @Tags loan
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body CreateLoanInput true "Loan Input"
// @Success 201 {object} utils.Response{data=loan.LoanResponse}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /loans [post]
func CreateLoan(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	var input CreateLoanInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	l, err := services.CreateLoan(u.ID, input.AccountID, input.Amount, input.InterestRate, input.RepaymentPeriodMonths)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Loan request submitted successfully", NewLoanResponse(l)))
}

// ListLoans godoc
// @Summary List the caller's loans
// @Tags loan
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Filter by status"
// @Success 200 {object} utils.Response{data=[]loan.LoanResponse}
// @Router /loans [get]
func ListLoans(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	filter := services.LoanFilter{UserID: &u.ID}
	if s := c.Query("status"); s != "" {
		parsed, err := models.ParseLoanStatus(s)
		if err != nil {
			respond.Error(c, err)
			return
		}
		filter.Status = &parsed
	}

	loans, err := services.FindLoans(filter)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Loans retrieved successfully", NewLoanResponses(loans)))
}

// GetLoan godoc
// @Summary Get a loan
// @Tags loan
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=loan.LoanResponse}
// @Failure 404 {object} utils.Response
// @Router /loans/{id} [get]
func GetLoan(c *gin.Context) {
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

	l, err := services.GetLoan(uint(id))
	if err != nil {
		respond.Error(c, err)
		return
	}
	if u.Role == models.UserRoleCustomer && l.UserID != u.ID {
		c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Forbidden"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Loan retrieved successfully", NewLoanResponse(l)))
}
