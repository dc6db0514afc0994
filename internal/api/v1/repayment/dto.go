package repayment

import (
	"time"

	"microfinance-backend/internal/models"

	"github.com/shopspring/decimal"
)

type CreateRepaymentInput struct {
	LoanID    uint            `json:"loanId" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Method    string          `json:"method" binding:"required"`
	Reference string          `json:"reference" binding:"max=100"`
}

type RepaymentResponse struct {
	ID            uint      `json:"id"`
	LoanID        uint      `json:"loanId"`
	Amount        string    `json:"amount"`
	Method        string    `json:"method"`
	Reference     string    `json:"reference,omitempty"`
	Status        string    `json:"status"`
	ReceiptNumber string    `json:"receiptNumber"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewRepaymentResponse(r *models.Repayment) RepaymentResponse {
	return RepaymentResponse{
		ID:            r.ID,
		LoanID:        r.LoanID,
		Amount:        r.Amount.StringFixed(2),
		Method:        string(r.Method),
		Reference:     r.Reference,
		Status:        string(r.Status),
		ReceiptNumber: r.ReceiptNumber,
		Timestamp:     r.CreatedAt,
	}
}

func NewRepaymentResponses(repayments []models.Repayment) []RepaymentResponse {
	out := make([]RepaymentResponse, 0, len(repayments))
	for i := range repayments {
		out = append(out, NewRepaymentResponse(&repayments[i]))
	}
	return out
}

type PagedRepayments struct {
	Items []RepaymentResponse `json:"items"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}
