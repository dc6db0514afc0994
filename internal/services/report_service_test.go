package services

import (
	"testing"

	"microfinance-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGetAdminDashboard(t *testing.T) {
	setupTestDB()

	active := seedUser("dash-active@example.com", models.UserStatusActive)
	seedUser("dash-pending@example.com", models.UserStatusPending)

	account := seedAccount(active.ID, decimal.Zero, models.AccountStatusActive)

	_, err := CreateTransaction(account.ID, "DEPOSIT", decimal.NewFromInt(250), "")
	assert.NoError(t, err)

	loan := seedActiveLoan(active.ID, account.ID, decimal.NewFromInt(1000))
	CreateLoan(active.ID, account.ID, decimal.NewFromInt(500), decimal.NewFromInt(5), 6)

	_, err = CreateRepayment(loan.ID, decimal.NewFromInt(100), "CASH", "")
	assert.NoError(t, err)

	stats, err := GetAdminDashboard()
	assert.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.ActiveUsers)
	assert.Equal(t, int64(1), stats.TotalAccounts)
	assert.True(t, stats.TotalBalance.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, int64(1), stats.TotalTransactions)
	assert.Equal(t, int64(2), stats.TotalLoans)
	assert.Equal(t, int64(1), stats.ActiveLoans)
	assert.Equal(t, int64(1), stats.PendingLoanApplications)
	assert.True(t, stats.TotalOutstandingBalance.Equal(decimal.NewFromInt(900)))
	assert.Equal(t, int64(1), stats.TotalRepayments)
	assert.True(t, stats.TotalRepaymentAmount.Equal(decimal.NewFromInt(100)))
}

func TestFindAuditLogsNewestFirst(t *testing.T) {
	setupTestDB()
	user := seedUser("dash-audit@example.com", models.UserStatusPending)

	ApproveUser(user.ID, 1)
	SuspendUser(user.ID, "review", 1)

	entries, total, err := FindAuditLogs(1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, entries, 2)
	assert.Equal(t, "user.suspend", entries[0].Action)
	assert.Equal(t, "user.approve", entries[1].Action)
}
