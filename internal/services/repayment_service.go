package services

import (
	"errors"
	"fmt"

	"microfinance-backend/internal/database"
	"microfinance-backend/internal/models"
	"microfinance-backend/internal/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateRepayment records a payment against an ACTIVE loan. Amounts
// above the remaining principal are rejected outright, there is no
// clamping. Repaying the exact principal drives the loan to PAID_OFF
// in the same transaction as the balance hitting zero.
func CreateRepayment(loanID uint, amount decimal.Decimal, methodStr, reference string) (*models.Repayment, error) {
	method, err := models.ParsePaymentMethod(methodStr)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var repayment *models.Repayment
	var ownerID uint

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		loan, err := getLoanForUpdate(tx, loanID)
		if err != nil {
			return err
		}
		if loan.Status != models.LoanStatusActive {
			return ErrLoanNotActive
		}
		if amount.GreaterThan(loan.PrincipalBalance) {
			return ErrAmountExceedsBalance
		}

		newPrincipal := loan.PrincipalBalance.Sub(amount)
		newTotal := loan.TotalRepaid.Add(amount)

		updates := map[string]interface{}{
			"principal_balance": newPrincipal,
			"total_repaid":      newTotal,
		}
		if newPrincipal.IsZero() {
			updates["status"] = models.LoanStatusPaidOff
		}
		if err := updateLoanGuarded(tx, loan, updates); err != nil {
			return err
		}

		repayment = &models.Repayment{
			LoanID:        loan.ID,
			Amount:        amount,
			Method:        method,
			Reference:     reference,
			Status:        models.RepaymentStatusSuccessful,
			ReceiptNumber: utils.NewReferenceNumber("RCP"),
		}
		if err := tx.Create(repayment).Error; err != nil {
			return err
		}

		ownerID = loan.UserID
		return nil
	})
	if err != nil {
		return nil, err
	}

	dispatchNotification(ownerID, models.NotificationTypePaymentReceived,
		fmt.Sprintf("Loan repayment of %s received successfully", amount.StringFixed(2)),
		repayment.ID)

	return repayment, nil
}

// ReverseRepayment restores the loan's principal and total repaid and
// marks the repayment FAILED. The restored figures are not
// re-validated against the original loan amount, and a PAID_OFF
// status triggered by this repayment is not reverted to ACTIVE.
func ReverseRepayment(repaymentID, actorID uint) (*models.Repayment, error) {
	var repayment models.Repayment
	var ownerID uint

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&repayment, repaymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRepaymentNotFound
			}
			return err
		}

		loan, err := getLoanForUpdate(tx, repayment.LoanID)
		if err != nil {
			return err
		}

		if err := updateLoanGuarded(tx, loan, map[string]interface{}{
			"principal_balance": loan.PrincipalBalance.Add(repayment.Amount),
			"total_repaid":      loan.TotalRepaid.Sub(repayment.Amount),
		}); err != nil {
			return err
		}

		if err := tx.Model(&repayment).Update("status", models.RepaymentStatusFailed).Error; err != nil {
			return err
		}

		ownerID = loan.UserID
		return nil
	})
	if err != nil {
		return nil, err
	}

	dispatchNotification(ownerID, models.NotificationTypeInfo,
		fmt.Sprintf("Repayment reversed: %s", repayment.ReceiptNumber), repayment.ID)
	recordAudit(actorID, "repayment.reverse", "repayment", repayment.ID, map[string]interface{}{
		"receipt_number": repayment.ReceiptNumber,
		"amount":         repayment.Amount.StringFixed(2),
	})

	return &repayment, nil
}

func GetRepayment(id uint) (*models.Repayment, error) {
	var repayment models.Repayment
	if err := database.DB.First(&repayment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRepaymentNotFound
		}
		return nil, err
	}
	return &repayment, nil
}

// FindLoanRepayments retrieves a paginated list of a loan's repayments.
func FindLoanRepayments(loanID uint, page, limit int) ([]models.Repayment, int64, error) {
	var repayments []models.Repayment
	var total int64

	query := database.DB.Model(&models.Repayment{}).Where("loan_id = ?", loanID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("id desc").Limit(limit).Offset(offset).Find(&repayments).Error; err != nil {
		return nil, 0, err
	}

	return repayments, total, nil
}
