package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"microfinance-backend/internal/database"
	"microfinance-backend/internal/models"
	"microfinance-backend/internal/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// updateAccountBalance persists a new balance with an optimistic
// version check so two concurrent operations against the same account
// cannot both commit a stale read.
func updateAccountBalance(tx *gorm.DB, account *models.Account, newBalance decimal.Decimal) error {
	result := tx.Model(account).
		Where("version = ?", account.Version).
		Updates(map[string]interface{}{
			"balance": newBalance,
			"version": account.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConcurrentUpdate
	}
	account.Balance = newBalance
	account.Version++
	return nil
}

// creditAccountInTx credits an active account and writes the matching
// ledger row inside the caller's transaction. Loan disbursement goes
// through here so every balance change has an audit record.
func creditAccountInTx(tx *gorm.DB, accountID uint, amount decimal.Decimal, txnType models.TransactionType, description string) (*models.Transaction, *models.Account, error) {
	var account models.Account
	if err := tx.First(&account, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrAccountNotFound
		}
		return nil, nil, err
	}
	if account.Status != models.AccountStatusActive {
		return nil, nil, ErrAccountNotActive
	}

	if err := updateAccountBalance(tx, &account, account.Balance.Add(amount)); err != nil {
		return nil, nil, err
	}

	transaction := &models.Transaction{
		AccountID:       account.ID,
		Type:            txnType,
		Amount:          amount,
		Description:     description,
		Status:          models.TransactionStatusCompleted,
		ReferenceNumber: utils.NewReferenceNumber("TXN"),
	}
	if err := tx.Create(transaction).Error; err != nil {
		return nil, nil, err
	}
	return transaction, &account, nil
}

// CreateTransaction applies a transaction to an account. Debit types
// (WITHDRAWAL, PAYMENT, TRANSFER) require sufficient balance; credit
// types (DEPOSIT, INTEREST) always succeed on an active account. The
// ledger row is persisted COMPLETED together with the balance change.
func CreateTransaction(accountID uint, typeStr string, amount decimal.Decimal, description string) (*models.Transaction, error) {
	txnType, err := models.ParseTransactionType(typeStr)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var transaction *models.Transaction
	var ownerID uint

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.First(&account, accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return err
		}
		if account.Status != models.AccountStatusActive {
			return ErrAccountNotActive
		}

		var newBalance decimal.Decimal
		if txnType.IsDebit() {
			if account.Balance.LessThan(amount) {
				return ErrInsufficientBalance
			}
			newBalance = account.Balance.Sub(amount)
		} else {
			newBalance = account.Balance.Add(amount)
		}

		if err := updateAccountBalance(tx, &account, newBalance); err != nil {
			return err
		}

		transaction = &models.Transaction{
			AccountID:       account.ID,
			Type:            txnType,
			Amount:          amount,
			Description:     description,
			Status:          models.TransactionStatusCompleted,
			ReferenceNumber: utils.NewReferenceNumber("TXN"),
		}
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}

		ownerID = account.UserID
		return nil
	})
	if err != nil {
		return nil, err
	}

	dispatchNotification(ownerID, models.NotificationTypePaymentReceived,
		fmt.Sprintf("Transaction completed: %s of %s", txnType, amount.StringFixed(2)),
		transaction.ID)

	return transaction, nil
}

// ReverseTransaction applies the inverse balance adjustment and marks
// the transaction CANCELLED. Sufficiency is deliberately not
// re-checked: reversing a deposit after intervening withdrawals can
// leave the balance negative. The record is never deleted.
func ReverseTransaction(transactionID, actorID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	var ownerID uint

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&transaction, transactionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransactionNotFound
			}
			return err
		}
		if transaction.Status != models.TransactionStatusCompleted {
			return ErrNotReversible
		}

		var account models.Account
		if err := tx.First(&account, transaction.AccountID).Error; err != nil {
			return err
		}

		var newBalance decimal.Decimal
		if transaction.Type.IsDebit() {
			newBalance = account.Balance.Add(transaction.Amount)
		} else {
			newBalance = account.Balance.Sub(transaction.Amount)
		}

		if err := updateAccountBalance(tx, &account, newBalance); err != nil {
			return err
		}

		if err := tx.Model(&transaction).Update("status", models.TransactionStatusCancelled).Error; err != nil {
			return err
		}

		ownerID = account.UserID
		return nil
	})
	if err != nil {
		return nil, err
	}

	dispatchNotification(ownerID, models.NotificationTypeInfo,
		fmt.Sprintf("Transaction reversed: %s", transaction.ReferenceNumber),
		transaction.ID)
	recordAudit(actorID, "transaction.reverse", "transaction", transaction.ID, map[string]interface{}{
		"reference_number": transaction.ReferenceNumber,
		"amount":           transaction.Amount.StringFixed(2),
	})

	return &transaction, nil
}

func GetTransaction(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := database.DB.First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

// TransactionFilter defines criteria for filtering transactions.
type TransactionFilter struct {
	AccountID *uint
	UserID    *uint
	Type      *models.TransactionType
	StartTime *time.Time
	EndTime   *time.Time
	Page      int
	Limit     int
}

// FindTransactions retrieves a paginated list of transactions with filtering.
func FindTransactions(filter TransactionFilter) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := database.DB.Model(&models.Transaction{})

	if filter.AccountID != nil {
		query = query.Where("transactions.account_id = ?", *filter.AccountID)
	}
	if filter.UserID != nil {
		query = query.Joins("JOIN accounts ON accounts.id = transactions.account_id").
			Where("accounts.user_id = ?", *filter.UserID)
	}
	if filter.Type != nil {
		query = query.Where("transactions.type = ?", *filter.Type)
	}
	if filter.StartTime != nil {
		query = query.Where("transactions.created_at >= ?", *filter.StartTime)
	}
	if filter.EndTime != nil {
		query = query.Where("transactions.created_at <= ?", *filter.EndTime)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("transactions.created_at desc").Limit(filter.Limit).Offset(offset).Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}

// GenerateStatementCSV generates a CSV statement for transactions.
func GenerateStatementCSV(transactions []models.Transaction) ([]byte, error) {
	b := &bytes.Buffer{}
	w := csv.NewWriter(b)

	header := []string{
		"ID", "Time", "Account ID", "Type", "Amount",
		"Status", "Reference Number", "Description",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, t := range transactions {
		record := []string{
			fmt.Sprintf("%d", t.ID),
			t.CreatedAt.Format(time.RFC3339),
			fmt.Sprintf("%d", t.AccountID),
			string(t.Type),
			t.Amount.StringFixed(2),
			string(t.Status),
			t.ReferenceNumber,
			t.Description,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}
