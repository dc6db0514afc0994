package loan

import "github.com/shopspring/decimal"

type ApproveLoanInput struct {
	ApprovedAmount decimal.Decimal `json:"approvedAmount" binding:"required"`
	Notes          string          `json:"notes" binding:"max=255"`
}

type RejectLoanInput struct {
	Reason string `json:"reason" binding:"required,max=255"`
}

type DisburseLoanInput struct {
	AccountID uint `json:"accountId" binding:"required"`
}
