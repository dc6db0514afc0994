package transaction

import (
	"net/http"
	"strconv"
	"time"

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

func buildFilter(c *gin.Context) (services.TransactionFilter, bool) {
	filter := services.TransactionFilter{Page: 1, Limit: 20}

	if p, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && p > 0 {
		filter.Page = p
	}
	if l, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil && l > 0 && l <= 100 {
		filter.Limit = l
	}
	if t := c.Query("type"); t != "" {
		parsed, err := models.ParseTransactionType(t)
		if err != nil {
			respond.Error(c, err)
			return filter, false
		}
		filter.Type = &parsed
	}
	if s := c.Query("startDate"); s != "" {
		if ts, err := time.Parse(time.RFC3339, s); err == nil {
			filter.StartTime = &ts
		}
	}
	if e := c.Query("endDate"); e != "" {
		if ts, err := time.Parse(time.RFC3339, e); err == nil {
			filter.EndTime = &ts
		}
	}

	return filter, true
}

// CreateTransaction godoc
// @Summary Apply a transaction to an account
// @Description DEPOSIT and INTEREST credit the balance; WITHDRAWAL, PAYMENT and TRANSFER debit it and require sufficient funds
// @Tags transaction
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body CreateTransactionInput true "Transaction Input"
// @Success 201 {object} utils.Response{data=transaction.TransactionResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /transactions [post]
func CreateTransaction(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	var input CreateTransactionInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	account, err := services.GetAccount(input.AccountID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	if u.Role == models.UserRoleCustomer && account.UserID != u.ID {
		c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Forbidden"))
		return
	}

	t, err := services.CreateTransaction(input.AccountID, input.Type, input.Amount, input.Description)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Transaction completed successfully", NewTransactionResponse(t)))
}

// ListTransactions godoc
// @Summary List the caller's transactions
// @Tags transaction
// @Produce json
// @Security ApiKeyAuth
// @Param accountId query int false "Filter by account"
// @Param type query string false "Filter by type"
// @Param startDate query string false "RFC3339 lower bound"
// @Param endDate query string false "RFC3339 upper bound"
// @Success 200 {object} utils.Response{data=transaction.PagedTransactions}
// @Router /transactions [get]
func ListTransactions(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	filter, ok := buildFilter(c)
	if !ok {
		return
	}
	filter.UserID = &u.ID

	if a := c.Query("accountId"); a != "" {
		if id, err := strconv.ParseUint(a, 10, 32); err == nil {
			accountID := uint(id)
			filter.AccountID = &accountID
		}
	}

	transactions, total, err := services.FindTransactions(filter)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transactions retrieved successfully", PagedTransactions{
		Items: NewTransactionResponses(transactions),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}))
}

// GetTransaction godoc
// @Summary Get a transaction
// @Tags transaction
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=transaction.TransactionResponse}
// @Failure 404 {object} utils.Response
// @Router /transactions/{id} [get]
func GetTransaction(c *gin.Context) {
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

	t, err := services.GetTransaction(uint(id))
	if err != nil {
		respond.Error(c, err)
		return
	}

	if u.Role == models.UserRoleCustomer {
		account, err := services.GetAccount(t.AccountID)
		if err != nil || account.UserID != u.ID {
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Forbidden"))
			return
		}
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transaction retrieved successfully", NewTransactionResponse(t)))
}

// ExportStatement godoc
// @Summary Export the caller's transactions as CSV
// @Tags transaction
// @Produce text/csv
// @Security ApiKeyAuth
// @Success 200 {string} string "CSV content"
// @Router /transactions/export [get]
func ExportStatement(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	filter, ok := buildFilter(c)
	if !ok {
		return
	}
	filter.UserID = &u.ID
	filter.Limit = 1000

	transactions, _, err := services.FindTransactions(filter)
	if err != nil {
		respond.Error(c, err)
		return
	}

	csvData, err := services.GenerateStatementCSV(transactions)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=statement.csv")
	c.Data(http.StatusOK, "text/csv", csvData)
}
