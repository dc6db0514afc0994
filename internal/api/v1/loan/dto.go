package loan

import (
	"time"

	"microfinance-backend/internal/models"

	"github.com/shopspring/decimal"
)

type CreateLoanInput struct {
	AccountID             uint            `json:"accountId" binding:"required"`
	Amount                decimal.Decimal `json:"amount" binding:"required"`
	InterestRate          decimal.Decimal `json:"interestRate" binding:"required"`
	RepaymentPeriodMonths int             `json:"repaymentPeriodMonths" binding:"required,min=1,max=360"`
}

type LoanResponse struct {
	ID                    uint       `json:"id"`
	UserID                uint       `json:"userId"`
	AccountID             uint       `json:"accountId"`
	Amount                string     `json:"amount"`
	InterestRate          string     `json:"interestRate"`
	RepaymentPeriodMonths int        `json:"repaymentPeriodMonths"`
	PrincipalBalance      string     `json:"principalBalance"`
	TotalRepaid           string     `json:"totalRepaid"`
	Status                string     `json:"status"`
	RequestDate           time.Time  `json:"requestDate"`
	StartDate             *time.Time `json:"startDate,omitempty"`
	DueDate               *time.Time `json:"dueDate,omitempty"`
}

func NewLoanResponse(l *models.Loan) LoanResponse {
	return LoanResponse{
		ID:                    l.ID,
		UserID:                l.UserID,
		AccountID:             l.AccountID,
		Amount:                l.Amount.StringFixed(2),
		InterestRate:          l.InterestRate.StringFixed(2),
		RepaymentPeriodMonths: l.RepaymentPeriodMonths,
		PrincipalBalance:      l.PrincipalBalance.StringFixed(2),
		TotalRepaid:           l.TotalRepaid.StringFixed(2),
		Status:                string(l.Status),
		RequestDate:           l.CreatedAt,
		StartDate:             l.StartDate,
		DueDate:               l.DueDate,
	}
}

func NewLoanResponses(loans []models.Loan) []LoanResponse {
	out := make([]LoanResponse, 0, len(loans))
	for i := range loans {
		out = append(out, NewLoanResponse(&loans[i]))
	}
	return out
}
