package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypeTransfer   TransactionType = "TRANSFER"
	TransactionTypePayment    TransactionType = "PAYMENT"
	TransactionTypeInterest   TransactionType = "INTEREST"
)

func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeTransfer,
		TransactionTypePayment, TransactionTypeInterest:
		return TransactionType(s), nil
	}
	return "", fmt.Errorf("%w: transaction type %q", ErrInvalidEnumValue, s)
}

// IsDebit reports whether the type moves money out of the account.
func (t TransactionType) IsDebit() bool {
	switch t {
	case TransactionTypeWithdrawal, TransactionTypePayment, TransactionTypeTransfer:
		return true
	}
	return false
}

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
	TransactionStatusCancelled TransactionStatus = "CANCELLED"
)

func ParseTransactionStatus(s string) (TransactionStatus, error) {
	switch TransactionStatus(s) {
	case TransactionStatusPending, TransactionStatusCompleted,
		TransactionStatusFailed, TransactionStatusCancelled:
		return TransactionStatus(s), nil
	}
	return "", fmt.Errorf("%w: transaction status %q", ErrInvalidEnumValue, s)
}

// Transaction amount and type are immutable after creation; reversal
// flips the balance effect and sets status to CANCELLED, it never
// deletes the record.
type Transaction struct {
	ID              uint `gorm:"primarykey"`
	CreatedAt       time.Time
	AccountID       uint              `gorm:"index;not null"`
	Type            TransactionType   `gorm:"type:varchar(20);not null"`
	Amount          decimal.Decimal   `gorm:"type:decimal(15,2);not null"`
	Description     string            `gorm:"type:text"`
	Status          TransactionStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`
	ReferenceNumber string            `gorm:"uniqueIndex;size:100;not null"`
}
