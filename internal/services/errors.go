package services

import "errors"

// Sentinel errors surfaced by the domain services. Handlers match
// them with errors.Is and map them to HTTP statuses.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrAccountNotFound      = errors.New("account not found")
	ErrLoanNotFound         = errors.New("loan not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrRepaymentNotFound    = errors.New("repayment not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotApproved    = errors.New("user account is not active")

	ErrInvalidState         = errors.New("operation not valid for current state")
	ErrAccountNotActive     = errors.New("account is not active")
	ErrLoanNotActive        = errors.New("loan is not active")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrAmountExceedsBalance = errors.New("repayment amount exceeds remaining balance")
	ErrBalanceNotZero       = errors.New("account balance must be zero before closing")
	ErrNotReversible        = errors.New("only completed transactions can be reversed")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")

	ErrConcurrentUpdate = errors.New("record was modified concurrently, please retry")
)
