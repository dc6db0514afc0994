package transaction

import (
	"net/http"
	"strconv"
	"time"

	"microfinance-backend/internal/api/v1/common/respond"
	v1transaction "microfinance-backend/internal/api/v1/transaction"
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

// ListTransactions godoc
// @Summary List transactions across all accounts
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param accountId query int false "Filter by account"
// @Param type query string false "Filter by type"
// @Param startDate query string false "RFC3339 lower bound"
// @Param endDate query string false "RFC3339 upper bound"
// @Success 200 {object} utils.Response{data=transaction.PagedTransactions}
// @Router /admin/transactions [get]
func ListTransactions(c *gin.Context) {
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
			return
		}
		filter.Type = &parsed
	}
	if a := c.Query("accountId"); a != "" {
		if id, err := strconv.ParseUint(a, 10, 32); err == nil {
			accountID := uint(id)
			filter.AccountID = &accountID
		}
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

	transactions, total, err := services.FindTransactions(filter)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transactions retrieved successfully", v1transaction.PagedTransactions{
		Items: v1transaction.NewTransactionResponses(transactions),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}))
}

// ReverseTransaction godoc
// @Summary Reverse a completed transaction
// @Description Applies the inverse balance movement and marks the transaction CANCELLED
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=transaction.TransactionResponse}
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/transactions/{id}/reverse [post]
func ReverseTransaction(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid ID"))
		return
	}

	t, err := services.ReverseTransaction(uint(id), actorID(c))
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transaction reversed successfully", v1transaction.NewTransactionResponse(t)))
}
