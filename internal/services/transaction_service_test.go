package services

import (
	"strings"
	"testing"

	"microfinance-backend/internal/database"
	"microfinance-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateTransactionDepositAndWithdrawal(t *testing.T) {
	setupTestDB()
	user := seedUser("txn-basic@example.com", models.UserStatusActive)
	account := seedAccount(user.ID, decimal.NewFromInt(100), models.AccountStatusActive)

	deposit, err := CreateTransaction(account.ID, "DEPOSIT", decimal.NewFromInt(50), "salary")
	assert.NoError(t, err)
	assert.Equal(t, models.TransactionStatusCompleted, deposit.Status)
	assert.True(t, strings.HasPrefix(deposit.ReferenceNumber, "TXN"))

	var updated models.Account
	database.DB.First(&updated, account.ID)
	assert.True(t, updated.Balance.Equal(decimal.NewFromInt(150)))

	withdrawal, err := CreateTransaction(account.ID, "WITHDRAWAL", decimal.NewFromInt(30), "atm")
	assert.NoError(t, err)
	assert.Equal(t, models.TransactionTypeWithdrawal, withdrawal.Type)

	database.DB.First(&updated, account.ID)
	assert.True(t, updated.Balance.Equal(decimal.NewFromInt(120)))
}

func TestCreateTransactionInsufficientBalance(t *testing.T) {
	setupTestDB()
	user := seedUser("txn-insufficient@example.com", models.UserStatusActive)
	account := seedAccount(user.ID, decimal.NewFromInt(100), models.AccountStatusActive)

	_, err := CreateTransaction(account.ID, "WITHDRAWAL", decimal.NewFromInt(500), "")
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// Nothing committed: balance unchanged and no transaction row.
	var updated models.Account
	database.DB.First(&updated, account.ID)
	assert.True(t, updated.Balance.Equal(decimal.NewFromInt(100)))

	var count int64
	database.DB.Model(&models.Transaction{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateTransactionRejectsInactiveAccount(t *testing.T) {
	setupTestDB()
	user := seedUser("txn-frozen@example.com", models.UserStatusActive)
	account := seedAccount(user.ID, decimal.NewFromInt(100), models.AccountStatusFrozen)

	_, err := CreateTransaction(account.ID, "DEPOSIT", decimal.NewFromInt(10), "")
	assert.ErrorIs(t, err, ErrAccountNotActive)
}

func TestCreateTransactionValidation(t *testing.T) {
	setupTestDB()
	user := seedUser("txn-validation@example.com", models.UserStatusActive)
	account := seedAccount(user.ID, decimal.NewFromInt(100), models.AccountStatusActive)

	_, err := CreateTransaction(account.ID, "DEPOSIT", decimal.Zero, "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = CreateTransaction(account.ID, "DEPOSIT", decimal.NewFromInt(-5), "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = CreateTransaction(account.ID, "GIFT", decimal.NewFromInt(5), "")
	assert.ErrorIs(t, err, models.ErrInvalidEnumValue)

	_, err = CreateTransaction(9999, "DEPOSIT", decimal.NewFromInt(5), "")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestInterestCreditsLikeDeposit(t *testing.T) {
	setupTestDB()
	user := seedUser("txn-interest@example.com", models.UserStatusActive)
	account := seedAccount(user.ID, decimal.NewFromInt(100), models.AccountStatusActive)

	_, err := CreateTransaction(account.ID, "INTEREST", decimal.NewFromFloat(2.50), "monthly interest")
	assert.NoError(t, err)

	var updated models.Account
	database.DB.First(&updated, account.ID)
	assert.True(t, updated.Balance.Equal(decimal.NewFromFloat(102.50)))
}

func TestReverseTransaction(t *testing.T) {
	setupTestDB()
	user := seedUser("txn-reverse@example.com", models.UserStatusActive)
	account := seedAccount(user.ID, decimal.NewFromInt(100), models.AccountStatusActive)

	deposit, err := CreateTransaction(account.ID, "DEPOSIT", decimal.NewFromInt(40), "")
	assert.NoError(t, err)

	reversed, err := ReverseTransaction(deposit.ID, 1)
	assert.NoError(t, err)
	assert.Equal(t, models.TransactionStatusCancelled, reversed.Status)

	var updated models.Account
	database.DB.First(&updated, account.ID)
	assert.True(t, updated.Balance.Equal(decimal.NewFromInt(100)))

	// A cancelled transaction cannot be reversed again.
	_, err = ReverseTransaction(deposit.ID, 1)
	assert.ErrorIs(t, err, ErrNotReversible)
}

func TestReverseTransactionMayDriveBalanceNegative(t *testing.T) {
	setupTestDB()
	user := seedUser("txn-negative@example.com", models.UserStatusActive)
	account := seedAccount(user.ID, decimal.Zero, models.AccountStatusActive)

	deposit, err := CreateTransaction(account.ID, "DEPOSIT", decimal.NewFromInt(100), "")
	assert.NoError(t, err)

	_, err = CreateTransaction(account.ID, "WITHDRAWAL", decimal.NewFromInt(80), "")
	assert.NoError(t, err)

	// Reversing the deposit applies the inverse movement without a
	// sufficiency check, so the balance goes to -80.
	_, err = ReverseTransaction(deposit.ID, 1)
	assert.NoError(t, err)

	var updated models.Account
	database.DB.First(&updated, account.ID)
	assert.True(t, updated.Balance.Equal(decimal.NewFromInt(-80)))
}

func TestFindTransactionsFilterByType(t *testing.T) {
	setupTestDB()
	user := seedUser("txn-filter@example.com", models.UserStatusActive)
	account := seedAccount(user.ID, decimal.NewFromInt(500), models.AccountStatusActive)

	CreateTransaction(account.ID, "DEPOSIT", decimal.NewFromInt(10), "")
	CreateTransaction(account.ID, "WITHDRAWAL", decimal.NewFromInt(5), "")
	CreateTransaction(account.ID, "DEPOSIT", decimal.NewFromInt(20), "")

	depositType := models.TransactionTypeDeposit
	transactions, total, err := FindTransactions(TransactionFilter{
		AccountID: &account.ID,
		Type:      &depositType,
		Page:      1,
		Limit:     10,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, transactions, 2)
}

func TestGenerateStatementCSV(t *testing.T) {
	setupTestDB()
	user := seedUser("txn-csv@example.com", models.UserStatusActive)
	account := seedAccount(user.ID, decimal.NewFromInt(100), models.AccountStatusActive)

	CreateTransaction(account.ID, "DEPOSIT", decimal.NewFromInt(25), "opening")

	transactions, _, err := FindTransactions(TransactionFilter{AccountID: &account.ID, Page: 1, Limit: 10})
	assert.NoError(t, err)

	data, err := GenerateStatementCSV(transactions)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "25.00")
	assert.Contains(t, string(data), "DEPOSIT")
}
