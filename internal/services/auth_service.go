package services

import (
	"errors"

	"microfinance-backend/internal/database"
	"microfinance-backend/internal/models"
	"microfinance-backend/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterUser creates a PENDING customer. The account stays unusable
// until an admin approves it.
func RegisterUser(name, email, phone, password string) (*models.User, error) {
	var existing models.User
	result := database.DB.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		return nil, ErrEmailAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hashedPassword),
		Status:       models.UserStatusPending,
		Role:         models.UserRoleCustomer,
	}
	if err := database.DB.Create(user).Error; err != nil {
		return nil, err
	}

	dispatchNotification(user.ID, models.NotificationTypeInfo,
		"Your registration is pending approval. You will be notified once approved.", user.ID)

	return user, nil
}

// LoginUser authenticates by email and password. Only ACTIVE users
// may log in.
func LoginUser(email, password string) (string, *models.User, error) {
	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if user.Status != models.UserStatusActive {
		return "", nil, ErrUserNotApproved
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}
