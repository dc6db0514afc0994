package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCard         PaymentMethod = "CARD"
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodMobileMoney  PaymentMethod = "MOBILE_MONEY"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentMethodBankTransfer, PaymentMethodCard, PaymentMethodCash, PaymentMethodMobileMoney:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("%w: payment method %q", ErrInvalidEnumValue, s)
}

type RepaymentStatus string

const (
	RepaymentStatusPending    RepaymentStatus = "PENDING"
	RepaymentStatusSuccessful RepaymentStatus = "SUCCESSFUL"
	RepaymentStatusFailed     RepaymentStatus = "FAILED"
)

func ParseRepaymentStatus(s string) (RepaymentStatus, error) {
	switch RepaymentStatus(s) {
	case RepaymentStatusPending, RepaymentStatusSuccessful, RepaymentStatusFailed:
		return RepaymentStatus(s), nil
	}
	return "", fmt.Errorf("%w: repayment status %q", ErrInvalidEnumValue, s)
}

type Repayment struct {
	ID            uint `gorm:"primarykey"`
	CreatedAt     time.Time
	LoanID        uint            `gorm:"index;not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Method        PaymentMethod   `gorm:"type:varchar(20);not null"`
	Reference     string          `gorm:"size:100"`
	Status        RepaymentStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`
	ReceiptNumber string          `gorm:"uniqueIndex;size:100;not null"`
}
