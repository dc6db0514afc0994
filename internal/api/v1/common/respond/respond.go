package respond

import (
	"errors"
	"net/http"

	"microfinance-backend/internal/models"
	"microfinance-backend/internal/services"
	"microfinance-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// Error maps a service error to an HTTP status and writes the
// standard envelope. Unknown errors become a generic 500 so internal
// details never leak.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrAccountNotFound),
		errors.Is(err, services.ErrLoanNotFound),
		errors.Is(err, services.ErrTransactionNotFound),
		errors.Is(err, services.ErrRepaymentNotFound),
		errors.Is(err, services.ErrNotificationNotFound):
		status = http.StatusNotFound
		message = err.Error()

	case errors.Is(err, models.ErrInvalidEnumValue),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInsufficientBalance),
		errors.Is(err, services.ErrAmountExceedsBalance):
		status = http.StatusBadRequest
		message = err.Error()

	case errors.Is(err, services.ErrEmailAlreadyExists):
		status = http.StatusConflict
		message = err.Error()

	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = err.Error()

	case errors.Is(err, services.ErrUserNotApproved):
		status = http.StatusForbidden
		message = err.Error()

	case errors.Is(err, services.ErrInvalidState),
		errors.Is(err, services.ErrAccountNotActive),
		errors.Is(err, services.ErrLoanNotActive),
		errors.Is(err, services.ErrNotReversible),
		errors.Is(err, services.ErrBalanceNotZero),
		errors.Is(err, services.ErrConcurrentUpdate):
		status = http.StatusConflict
		message = err.Error()
	}

	c.JSON(status, utils.NewErrorResponse(status, message))
}
