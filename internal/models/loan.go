package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type LoanStatus string

const (
	LoanStatusPending   LoanStatus = "PENDING"
	LoanStatusApproved  LoanStatus = "APPROVED"
	LoanStatusRejected  LoanStatus = "REJECTED"
	LoanStatusActive    LoanStatus = "ACTIVE"
	LoanStatusPaidOff   LoanStatus = "PAID_OFF"
	LoanStatusDefaulted LoanStatus = "DEFAULTED"
)

func ParseLoanStatus(s string) (LoanStatus, error) {
	switch LoanStatus(s) {
	case LoanStatusPending, LoanStatusApproved, LoanStatusRejected,
		LoanStatusActive, LoanStatusPaidOff, LoanStatusDefaulted:
		return LoanStatus(s), nil
	}
	return "", fmt.Errorf("%w: loan status %q", ErrInvalidEnumValue, s)
}

// Loan tracks the principal still owed. Amount holds the requested
// figure until approval overwrites it with the approved one.
// Invariant once active: PrincipalBalance == Amount - TotalRepaid,
// and PrincipalBalance == 0 exactly when status is PAID_OFF.
type Loan struct {
	ID                    uint `gorm:"primarykey"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	UserID                uint            `gorm:"index;not null"`
	AccountID             uint            `gorm:"index;not null"`
	Amount                decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InterestRate          decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	RepaymentPeriodMonths int             `gorm:"not null"`
	PrincipalBalance      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalRepaid           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status                LoanStatus      `gorm:"type:varchar(20);not null;default:'PENDING'"`
	StartDate             *time.Time
	DueDate               *time.Time
	Version               int `gorm:"default:1"`
}
