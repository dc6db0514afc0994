package account

import (
	"time"

	"microfinance-backend/internal/models"
)

type CreateAccountInput struct {
	AccountType string `json:"accountType" binding:"required"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type AccountResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"userId"`
	Balance     string    `json:"balance"`
	AccountType string    `json:"accountType"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewAccountResponse(a *models.Account) AccountResponse {
	return AccountResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Balance:     a.Balance.StringFixed(2),
		AccountType: string(a.AccountType),
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}

func NewAccountResponses(accounts []models.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, NewAccountResponse(&accounts[i]))
	}
	return out
}
