package services

import (
	"microfinance-backend/internal/database"
	"microfinance-backend/internal/models"

	"github.com/shopspring/decimal"
)

// DashboardStats is the admin overview: simple reductions over the
// stored collections, summed with exact decimal arithmetic.
type DashboardStats struct {
	TotalUsers              int64           `json:"totalUsers"`
	ActiveUsers             int64           `json:"activeUsers"`
	TotalAccounts           int64           `json:"totalAccounts"`
	TotalBalance            decimal.Decimal `json:"totalBalance"`
	TotalTransactions       int64           `json:"totalTransactions"`
	TotalTransactionAmount  decimal.Decimal `json:"totalTransactionAmount"`
	TotalLoans              int64           `json:"totalLoans"`
	ActiveLoans             int64           `json:"activeLoans"`
	TotalLoanAmount         decimal.Decimal `json:"totalLoanAmount"`
	TotalOutstandingBalance decimal.Decimal `json:"totalOutstandingBalance"`
	PendingLoanApplications int64           `json:"pendingLoanApplications"`
	TotalRepayments         int64           `json:"totalRepayments"`
	TotalRepaymentAmount    decimal.Decimal `json:"totalRepaymentAmount"`
}

// GetAdminDashboard aggregates counts and sums across all entities.
func GetAdminDashboard() (*DashboardStats, error) {
	stats := &DashboardStats{
		TotalBalance:            decimal.Zero,
		TotalTransactionAmount:  decimal.Zero,
		TotalLoanAmount:         decimal.Zero,
		TotalOutstandingBalance: decimal.Zero,
		TotalRepaymentAmount:    decimal.Zero,
	}

	if err := database.DB.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Model(&models.User{}).
		Where("status = ?", models.UserStatusActive).Count(&stats.ActiveUsers).Error; err != nil {
		return nil, err
	}

	var accounts []models.Account
	if err := database.DB.Find(&accounts).Error; err != nil {
		return nil, err
	}
	stats.TotalAccounts = int64(len(accounts))
	for _, a := range accounts {
		stats.TotalBalance = stats.TotalBalance.Add(a.Balance)
	}

	var transactions []models.Transaction
	if err := database.DB.Find(&transactions).Error; err != nil {
		return nil, err
	}
	stats.TotalTransactions = int64(len(transactions))
	for _, t := range transactions {
		stats.TotalTransactionAmount = stats.TotalTransactionAmount.Add(t.Amount)
	}

	var loans []models.Loan
	if err := database.DB.Find(&loans).Error; err != nil {
		return nil, err
	}
	stats.TotalLoans = int64(len(loans))
	for _, l := range loans {
		stats.TotalLoanAmount = stats.TotalLoanAmount.Add(l.Amount)
		switch l.Status {
		case models.LoanStatusActive:
			stats.ActiveLoans++
			stats.TotalOutstandingBalance = stats.TotalOutstandingBalance.Add(l.PrincipalBalance)
		case models.LoanStatusPending:
			stats.PendingLoanApplications++
		}
	}

	var repayments []models.Repayment
	if err := database.DB.Find(&repayments).Error; err != nil {
		return nil, err
	}
	stats.TotalRepayments = int64(len(repayments))
	for _, r := range repayments {
		stats.TotalRepaymentAmount = stats.TotalRepaymentAmount.Add(r.Amount)
	}

	return stats, nil
}
