package transaction

import (
	"time"

	"microfinance-backend/internal/models"

	"github.com/shopspring/decimal"
)

type CreateTransactionInput struct {
	AccountID   uint            `json:"accountId" binding:"required"`
	Type        string          `json:"type" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"max=255"`
}

type TransactionResponse struct {
	ID              uint      `json:"id"`
	AccountID       uint      `json:"accountId"`
	Type            string    `json:"type"`
	Amount          string    `json:"amount"`
	Description     string    `json:"description,omitempty"`
	Status          string    `json:"status"`
	ReferenceNumber string    `json:"referenceNumber"`
	Timestamp       time.Time `json:"timestamp"`
}

func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		AccountID:       t.AccountID,
		Type:            string(t.Type),
		Amount:          t.Amount.StringFixed(2),
		Description:     t.Description,
		Status:          string(t.Status),
		ReferenceNumber: t.ReferenceNumber,
		Timestamp:       t.CreatedAt,
	}
}

func NewTransactionResponses(transactions []models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		out = append(out, NewTransactionResponse(&transactions[i]))
	}
	return out
}

type PagedTransactions struct {
	Items []TransactionResponse `json:"items"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}
