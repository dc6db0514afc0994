package services

import (
	"errors"
	"fmt"

	"microfinance-backend/internal/database"
	"microfinance-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateAccount opens a new account for an ACTIVE user with a zero
// balance.
func CreateAccount(userID uint, accountTypeStr string) (*models.Account, error) {
	accountType, err := models.ParseAccountType(accountTypeStr)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.Status != models.UserStatusActive {
		return nil, ErrUserNotApproved
	}

	account := &models.Account{
		UserID:      userID,
		Balance:     decimal.Zero,
		AccountType: accountType,
		Status:      models.AccountStatusActive,
	}
	if err := database.DB.Create(account).Error; err != nil {
		return nil, err
	}

	dispatchNotification(userID, models.NotificationTypeInfo,
		fmt.Sprintf("New %s account created successfully", accountType), account.ID)

	return account, nil
}

func GetAccount(id uint) (*models.Account, error) {
	var account models.Account
	if err := database.DB.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// FindUserAccounts lists a user's accounts, optionally filtered by status.
func FindUserAccounts(userID uint, status *models.AccountStatus) ([]models.Account, error) {
	query := database.DB.Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var accounts []models.Account
	if err := query.Order("id asc").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// UpdateAccountStatus moves an account between ACTIVE and FROZEN.
// Closing goes through CloseAccount, which enforces the zero-balance
// rule.
func UpdateAccountStatus(accountID uint, statusStr string, actorID uint) (*models.Account, error) {
	status, err := models.ParseAccountStatus(statusStr)
	if err != nil {
		return nil, err
	}
	if status == models.AccountStatusClosed {
		return CloseAccount(accountID, actorID)
	}

	account, err := GetAccount(accountID)
	if err != nil {
		return nil, err
	}

	if err := database.DB.Model(account).Update("status", status).Error; err != nil {
		return nil, err
	}

	recordAudit(actorID, "account.status", "account", account.ID, map[string]interface{}{
		"status": string(status),
	})
	return account, nil
}

// CloseAccount closes an account. The balance must be exactly zero.
func CloseAccount(accountID uint, actorID uint) (*models.Account, error) {
	account, err := GetAccount(accountID)
	if err != nil {
		return nil, err
	}
	if !account.Balance.IsZero() {
		return nil, ErrBalanceNotZero
	}

	if err := database.DB.Model(account).Update("status", models.AccountStatusClosed).Error; err != nil {
		return nil, err
	}

	dispatchNotification(account.UserID, models.NotificationTypeInfo,
		fmt.Sprintf("Account %d has been closed", account.ID), account.ID)
	recordAudit(actorID, "account.close", "account", account.ID, nil)

	return account, nil
}
