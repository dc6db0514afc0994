package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeChecking   AccountType = "CHECKING"
	AccountTypeCredit     AccountType = "CREDIT"
	AccountTypeInvestment AccountType = "INVESTMENT"
)

func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case AccountTypeSavings, AccountTypeChecking, AccountTypeCredit, AccountTypeInvestment:
		return AccountType(s), nil
	}
	return "", fmt.Errorf("%w: account type %q", ErrInvalidEnumValue, s)
}

type AccountStatus string

const (
	AccountStatusActive AccountStatus = "ACTIVE"
	AccountStatusFrozen AccountStatus = "FROZEN"
	AccountStatusClosed AccountStatus = "CLOSED"
)

func ParseAccountStatus(s string) (AccountStatus, error) {
	switch AccountStatus(s) {
	case AccountStatusActive, AccountStatusFrozen, AccountStatusClosed:
		return AccountStatus(s), nil
	}
	return "", fmt.Errorf("%w: account status %q", ErrInvalidEnumValue, s)
}

// Debits require sufficient balance; reversals apply the inverse
// movement without that check. Closing requires a zero balance.
type Account struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      uint            `gorm:"index;not null"`
	Balance     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AccountType AccountType     `gorm:"type:varchar(20);not null"`
	Status      AccountStatus   `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	Version     int             `gorm:"default:1"`
}
