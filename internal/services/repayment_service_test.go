package services

import (
	"strings"
	"testing"

	"microfinance-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateRepaymentReceipt(t *testing.T) {
	setupTestDB()
	user := seedUser("rep-receipt@example.com", models.UserStatusActive)
	account := seedAccount(user.ID, decimal.Zero, models.AccountStatusActive)
	loan := seedActiveLoan(user.ID, account.ID, decimal.NewFromInt(500))

	repayment, err := CreateRepayment(loan.ID, decimal.NewFromInt(100), "CASH", "")
	assert.NoError(t, err)
	assert.Equal(t, models.RepaymentStatusSuccessful, repayment.Status)
	assert.Equal(t, models.PaymentMethodCash, repayment.Method)
	assert.True(t, strings.HasPrefix(repayment.ReceiptNumber, "RCP"))
}

func TestCreateRepaymentExceedsPrincipal(t *testing.T) {
	setupTestDB()
	user := seedUser("rep-exceeds@example.com", models.UserStatusActive)
	account := seedAccount(user.ID, decimal.Zero, models.AccountStatusActive)
	loan := seedActiveLoan(user.ID, account.ID, decimal.NewFromInt(500))

	_, err := CreateRepayment(loan.ID, decimal.NewFromInt(600), "CASH", "")
	assert.ErrorIs(t, err, ErrAmountExceedsBalance)

	refreshed, _ := GetLoan(loan.ID)
	assert.True(t, refreshed.PrincipalBalance.Equal(decimal.NewFromInt(500)))
	assert.True(t, refreshed.TotalRepaid.IsZero())
}

func TestCreateRepaymentRequiresActiveLoan(t *testing.T) {
	setupTestDB()
	user := seedUser("rep-inactive@example.com", models.UserStatusActive)
	account := seedAccount(user.ID, decimal.Zero, models.AccountStatusActive)

	loan, _ := CreateLoan(user.ID, account.ID, decimal.NewFromInt(500), decimal.NewFromInt(5), 6)

	_, err := CreateRepayment(loan.ID, decimal.NewFromInt(100), "CASH", "")
	assert.ErrorIs(t, err, ErrLoanNotActive)
}

func TestCreateRepaymentValidation(t *testing.T) {
	setupTestDB()
	user := seedUser("rep-validation@example.com", models.UserStatusActive)
	account := seedAccount(user.ID, decimal.Zero, models.AccountStatusActive)
	loan := seedActiveLoan(user.ID, account.ID, decimal.NewFromInt(500))

	_, err := CreateRepayment(loan.ID, decimal.Zero, "CASH", "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = CreateRepayment(loan.ID, decimal.NewFromInt(10), "BARTER", "")
	assert.ErrorIs(t, err, models.ErrInvalidEnumValue)

	_, err = CreateRepayment(9999, decimal.NewFromInt(10), "CASH", "")
	assert.ErrorIs(t, err, ErrLoanNotFound)
}

func TestReverseRepaymentRestoresPrincipal(t *testing.T) {
	setupTestDB()
	user := seedUser("rep-reverse@example.com", models.UserStatusActive)
	account := seedAccount(user.ID, decimal.Zero, models.AccountStatusActive)
	loan := seedActiveLoan(user.ID, account.ID, decimal.NewFromInt(500))

	repayment, err := CreateRepayment(loan.ID, decimal.NewFromInt(200), "CARD", "")
	assert.NoError(t, err)

	reversed, err := ReverseRepayment(repayment.ID, 1)
	assert.NoError(t, err)
	assert.Equal(t, models.RepaymentStatusFailed, reversed.Status)

	refreshed, _ := GetLoan(loan.ID)
	assert.True(t, refreshed.PrincipalBalance.Equal(decimal.NewFromInt(500)))
	assert.True(t, refreshed.TotalRepaid.IsZero())
}

func TestReverseRepaymentDoesNotRevertPaidOff(t *testing.T) {
	setupTestDB()
	user := seedUser("rep-paidoff@example.com", models.UserStatusActive)
	account := seedAccount(user.ID, decimal.Zero, models.AccountStatusActive)
	loan := seedActiveLoan(user.ID, account.ID, decimal.NewFromInt(500))

	repayment, err := CreateRepayment(loan.ID, decimal.NewFromInt(500), "MOBILE_MONEY", "")
	assert.NoError(t, err)

	refreshed, _ := GetLoan(loan.ID)
	assert.Equal(t, models.LoanStatusPaidOff, refreshed.Status)

	// Reversal restores the figures but the PAID_OFF status stands.
	_, err = ReverseRepayment(repayment.ID, 1)
	assert.NoError(t, err)

	refreshed, _ = GetLoan(loan.ID)
	assert.True(t, refreshed.PrincipalBalance.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, models.LoanStatusPaidOff, refreshed.Status)
}

func TestFindLoanRepaymentsPagination(t *testing.T) {
	setupTestDB()
	user := seedUser("rep-list@example.com", models.UserStatusActive)
	account := seedAccount(user.ID, decimal.Zero, models.AccountStatusActive)
	loan := seedActiveLoan(user.ID, account.ID, decimal.NewFromInt(500))

	for i := 0; i < 3; i++ {
		_, err := CreateRepayment(loan.ID, decimal.NewFromInt(50), "CASH", "")
		assert.NoError(t, err)
	}

	repayments, total, err := FindLoanRepayments(loan.ID, 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, repayments, 2)
}
