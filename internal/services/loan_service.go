package services

import (
	"errors"
	"fmt"
	"time"

	"microfinance-backend/internal/database"
	"microfinance-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// updateLoanGuarded applies updates with an optimistic version check.
// Callers refresh the in-memory struct themselves after success.
func updateLoanGuarded(tx *gorm.DB, loan *models.Loan, updates map[string]interface{}) error {
	updates["version"] = loan.Version + 1
	result := tx.Model(loan).Where("version = ?", loan.Version).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConcurrentUpdate
	}
	loan.Version++
	return nil
}

func getLoanForUpdate(tx *gorm.DB, loanID uint) (*models.Loan, error) {
	var loan models.Loan
	if err := tx.First(&loan, loanID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, err
	}
	return &loan, nil
}

// CreateLoan records a loan request. The requesting user must be
// ACTIVE. The loan starts PENDING with the principal equal to the
// requested amount.
func CreateLoan(userID, accountID uint, amount, interestRate decimal.Decimal, repaymentPeriodMonths int) (*models.Loan, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
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

	var account models.Account
	if err := database.DB.First(&account, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	loan := &models.Loan{
		UserID:                userID,
		AccountID:             accountID,
		Amount:                amount,
		InterestRate:          interestRate,
		RepaymentPeriodMonths: repaymentPeriodMonths,
		PrincipalBalance:      amount,
		TotalRepaid:           decimal.Zero,
		Status:                models.LoanStatusPending,
	}
	if err := database.DB.Create(loan).Error; err != nil {
		return nil, err
	}

	dispatchNotification(userID, models.NotificationTypeInfo,
		fmt.Sprintf("Loan request for %s submitted successfully", amount.StringFixed(2)), loan.ID)

	return loan, nil
}

// ApproveLoan moves a PENDING loan to APPROVED. The approved amount
// overwrites both the requested amount and the principal balance; the
// due date is the approval date plus the repayment period in calendar
// months.
func ApproveLoan(loanID uint, approvedAmount decimal.Decimal, notes string, actorID uint) (*models.Loan, error) {
	if !approvedAmount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var loan *models.Loan
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		loan, err = getLoanForUpdate(tx, loanID)
		if err != nil {
			return err
		}
		if loan.Status != models.LoanStatusPending {
			return ErrInvalidState
		}

		startDate := time.Now()
		dueDate := startDate.AddDate(0, loan.RepaymentPeriodMonths, 0)

		if err := updateLoanGuarded(tx, loan, map[string]interface{}{
			"status":            models.LoanStatusApproved,
			"amount":            approvedAmount,
			"principal_balance": approvedAmount,
			"start_date":        startDate,
			"due_date":          dueDate,
		}); err != nil {
			return err
		}

		loan.Status = models.LoanStatusApproved
		loan.Amount = approvedAmount
		loan.PrincipalBalance = approvedAmount
		loan.StartDate = &startDate
		loan.DueDate = &dueDate
		return nil
	})
	if err != nil {
		return nil, err
	}

	dispatchNotification(loan.UserID, models.NotificationTypeLoanApproved,
		fmt.Sprintf("Your loan request for %s has been approved", approvedAmount.StringFixed(2)), loan.ID)
	recordAudit(actorID, "loan.approve", "loan", loan.ID, map[string]interface{}{
		"approved_amount": approvedAmount.StringFixed(2),
		"notes":           notes,
	})

	return loan, nil
}

// RejectLoan moves a PENDING loan to REJECTED. The reason is carried
// in the notification text only, not persisted as a structured field.
func RejectLoan(loanID uint, reason string, actorID uint) (*models.Loan, error) {
	var loan *models.Loan
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		loan, err = getLoanForUpdate(tx, loanID)
		if err != nil {
			return err
		}
		if loan.Status != models.LoanStatusPending {
			return ErrInvalidState
		}

		if err := updateLoanGuarded(tx, loan, map[string]interface{}{
			"status": models.LoanStatusRejected,
		}); err != nil {
			return err
		}
		loan.Status = models.LoanStatusRejected
		return nil
	})
	if err != nil {
		return nil, err
	}

	dispatchNotification(loan.UserID, models.NotificationTypeLoanRejected,
		fmt.Sprintf("Your loan request has been rejected. Reason: %s", reason), loan.ID)
	recordAudit(actorID, "loan.reject", "loan", loan.ID, map[string]interface{}{
		"reason": reason,
	})

	return loan, nil
}

// DisburseLoan credits the approved amount to the target account and
// activates the loan. The credit goes through the balance engine so a
// COMPLETED DEPOSIT row documents the balance change.
func DisburseLoan(loanID, accountID, actorID uint) (*models.Loan, error) {
	var loan *models.Loan
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		loan, err = getLoanForUpdate(tx, loanID)
		if err != nil {
			return err
		}
		if loan.Status != models.LoanStatusApproved {
			return ErrInvalidState
		}

		_, _, err = creditAccountInTx(tx, accountID, loan.Amount,
			models.TransactionTypeDeposit, fmt.Sprintf("Loan %d disbursement", loan.ID))
		if err != nil {
			return err
		}

		if err := updateLoanGuarded(tx, loan, map[string]interface{}{
			"status": models.LoanStatusActive,
		}); err != nil {
			return err
		}
		loan.Status = models.LoanStatusActive
		return nil
	})
	if err != nil {
		return nil, err
	}

	dispatchNotification(loan.UserID, models.NotificationTypeInfo,
		fmt.Sprintf("Loan amount %s has been disbursed to your account", loan.Amount.StringFixed(2)), loan.ID)
	recordAudit(actorID, "loan.disburse", "loan", loan.ID, map[string]interface{}{
		"account_id": accountID,
		"amount":     loan.Amount.StringFixed(2),
	})

	return loan, nil
}

// CloseLoan explicitly marks a fully repaid loan PAID_OFF. Repaying
// the last unit of principal already does this automatically; the
// explicit path exists for loans left ACTIVE at zero by a reversal or
// migration.
func CloseLoan(loanID, actorID uint) (*models.Loan, error) {
	var loan *models.Loan
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		loan, err = getLoanForUpdate(tx, loanID)
		if err != nil {
			return err
		}
		if loan.PrincipalBalance.IsPositive() {
			return ErrInvalidState
		}

		if err := updateLoanGuarded(tx, loan, map[string]interface{}{
			"status": models.LoanStatusPaidOff,
		}); err != nil {
			return err
		}
		loan.Status = models.LoanStatusPaidOff
		return nil
	})
	if err != nil {
		return nil, err
	}

	dispatchNotification(loan.UserID, models.NotificationTypeInfo,
		"Congratulations! Your loan has been fully repaid and closed", loan.ID)
	recordAudit(actorID, "loan.close", "loan", loan.ID, nil)

	return loan, nil
}

// MarkLoanDefaulted is the external policy hook for defaults; nothing
// in this core triggers it automatically.
func MarkLoanDefaulted(loanID, actorID uint) (*models.Loan, error) {
	var loan *models.Loan
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		loan, err = getLoanForUpdate(tx, loanID)
		if err != nil {
			return err
		}
		if loan.Status != models.LoanStatusActive {
			return ErrInvalidState
		}

		if err := updateLoanGuarded(tx, loan, map[string]interface{}{
			"status": models.LoanStatusDefaulted,
		}); err != nil {
			return err
		}
		loan.Status = models.LoanStatusDefaulted
		return nil
	})
	if err != nil {
		return nil, err
	}

	dispatchNotification(loan.UserID, models.NotificationTypeWarning,
		"Your loan has been marked as defaulted", loan.ID)
	recordAudit(actorID, "loan.default", "loan", loan.ID, nil)

	return loan, nil
}

func GetLoan(id uint) (*models.Loan, error) {
	var loan models.Loan
	if err := database.DB.First(&loan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, err
	}
	return &loan, nil
}

// LoanFilter defines criteria for listing loans.
type LoanFilter struct {
	UserID *uint
	Status *models.LoanStatus
}

func FindLoans(filter LoanFilter) ([]models.Loan, error) {
	query := database.DB.Model(&models.Loan{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var loans []models.Loan
	if err := query.Order("id desc").Find(&loans).Error; err != nil {
		return nil, err
	}
	return loans, nil
}
