package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"microfinance-backend/internal/database"
	"microfinance-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func FindUserByID(userID uint) (models.User, error) {
	// Try cache
	cacheKey := fmt.Sprintf("user:%d", userID)
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var user models.User
			if err := json.Unmarshal([]byte(val), &user); err == nil {
				return user, nil
			}
		}
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrUserNotFound
		}
		return user, err
	}

	// Set cache
	if database.RedisClient != nil {
		if data, err := json.Marshal(user); err == nil {
			database.RedisClient.Set(database.Ctx, cacheKey, data, time.Hour)
		}
	}

	return user, nil
}

func invalidateUserCache(userID uint) {
	if database.RedisClient != nil {
		database.RedisClient.Del(database.Ctx, fmt.Sprintf("user:%d", userID))
	}
}

// UserFilter defines criteria for listing users.
type UserFilter struct {
	Status *models.UserStatus
	Role   *models.UserRole
	Search string
	Page   int
	Limit  int
}

// FindUsers retrieves a paginated list of users with filtering.
func FindUsers(filter UserFilter) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := database.DB.Model(&models.User{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Limit(filter.Limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// CreateUser is the admin path: role and status are set explicitly
// instead of the PENDING/CUSTOMER defaults of self registration.
func CreateUser(name, email, phone, password, roleStr, statusStr string) (*models.User, error) {
	role, err := models.ParseUserRole(roleStr)
	if err != nil {
		return nil, err
	}
	status := models.UserStatusActive
	if statusStr != "" {
		status, err = models.ParseUserStatus(statusStr)
		if err != nil {
			return nil, err
		}
	}

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
		Status:       status,
		Role:         role,
	}
	if err := database.DB.Create(user).Error; err != nil {
		return nil, err
	}

	dispatchNotification(user.ID, models.NotificationTypeAccountCreated,
		"Your account has been created successfully. Welcome to Microfinance Transaction Manager!", user.ID)

	return user, nil
}

// UpdateUser updates a user with optimistic locking and selective fields.
func UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var user models.User
	if err := tx.First(&user, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// Password handling
	if password, ok := updates["password"].(string); ok && password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		delete(updates, "password")
		updates["password_hash"] = string(hashedPassword)
	}

	currentVersion := user.Version
	updates["version"] = currentVersion + 1

	result := tx.Model(&user).Where("version = ?", currentVersion).Updates(updates)
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrConcurrentUpdate
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	invalidateUserCache(id)

	database.DB.First(&user, id)
	return &user, nil
}

func setUserStatus(userID uint, status models.UserStatus) (*models.User, error) {
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := database.DB.Model(&user).Update("status", status).Error; err != nil {
		return nil, err
	}
	invalidateUserCache(userID)
	return &user, nil
}

// ApproveUser moves a user to ACTIVE. This is the only way a
// registered user leaves PENDING.
func ApproveUser(userID, actorID uint) (*models.User, error) {
	user, err := setUserStatus(userID, models.UserStatusActive)
	if err != nil {
		return nil, err
	}

	dispatchNotification(userID, models.NotificationTypeAccountApproved,
		"Your account has been approved and is now active", userID)
	recordAudit(actorID, "user.approve", "user", userID, nil)

	return user, nil
}

// SuspendUser moves a user to INACTIVE.
func SuspendUser(userID uint, reason string, actorID uint) (*models.User, error) {
	user, err := setUserStatus(userID, models.UserStatusInactive)
	if err != nil {
		return nil, err
	}

	dispatchNotification(userID, models.NotificationTypeWarning,
		fmt.Sprintf("Your account has been suspended. Reason: %s", reason), userID)
	recordAudit(actorID, "user.suspend", "user", userID, map[string]interface{}{
		"reason": reason,
	})

	return user, nil
}

// BanUser moves a user to BANNED.
func BanUser(userID uint, reason string, actorID uint) (*models.User, error) {
	user, err := setUserStatus(userID, models.UserStatusBanned)
	if err != nil {
		return nil, err
	}

	dispatchNotification(userID, models.NotificationTypeAlert,
		fmt.Sprintf("Your account has been banned. Reason: %s", reason), userID)
	recordAudit(actorID, "user.ban", "user", userID, map[string]interface{}{
		"reason": reason,
	})

	return user, nil
}

// DeleteUser soft-deletes by marking the user INACTIVE; records are
// never physically removed.
func DeleteUser(userID, actorID uint) error {
	if _, err := setUserStatus(userID, models.UserStatusInactive); err != nil {
		return err
	}
	recordAudit(actorID, "user.delete", "user", userID, nil)
	return nil
}
