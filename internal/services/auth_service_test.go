package services

import (
	"os"
	"testing"

	"microfinance-backend/internal/database"
	"microfinance-backend/internal/models"
	"microfinance-backend/internal/utils"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterUserStartsPending(t *testing.T) {
	setupTestDB()

	user, err := RegisterUser("Alice", "alice@example.com", "555-0100", "hunter22")
	assert.NoError(t, err)
	assert.Equal(t, models.UserStatusPending, user.Status)
	assert.Equal(t, models.UserRoleCustomer, user.Role)

	// The stored credential is a bcrypt hash, never the plaintext.
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))

	// Registration leaves a pending-approval notification.
	var notification models.Notification
	err = database.DB.Where("user_id = ?", user.ID).First(&notification).Error
	assert.NoError(t, err)
	assert.Equal(t, models.NotificationStatusUnread, notification.Status)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	setupTestDB()

	_, err := RegisterUser("Alice", "dup@example.com", "", "hunter22")
	assert.NoError(t, err)

	_, err = RegisterUser("Bob", "dup@example.com", "", "other-pass")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLoginBlockedUntilApproved(t *testing.T) {
	setupTestDB()
	os.Setenv("JWT_SECRET", "test_secret")

	user, err := RegisterUser("Carol", "carol@example.com", "", "hunter22")
	assert.NoError(t, err)

	_, _, err = LoginUser("carol@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrUserNotApproved)

	_, err = ApproveUser(user.ID, 1)
	assert.NoError(t, err)

	token, loggedIn, err := LoginUser("carol@example.com", "hunter22")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	claims, err := utils.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, float64(user.ID), claims["user_id"])
	assert.Equal(t, string(models.UserRoleCustomer), claims["role"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	setupTestDB()
	os.Setenv("JWT_SECRET", "test_secret")

	user, _ := RegisterUser("Dave", "dave@example.com", "", "hunter22")
	ApproveUser(user.ID, 1)

	_, _, err := LoginUser("dave@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// An unknown email yields the same error as a bad password.
	_, _, err = LoginUser("nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
