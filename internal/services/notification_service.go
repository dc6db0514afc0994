package services

import (
	"errors"

	"microfinance-backend/internal/database"
	"microfinance-backend/internal/models"
	"microfinance-backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateNotification durably stores a notification for a user.
// Delivery is exactly the act of storage; there is no external
// channel. The only reportable failure is the user being absent.
func CreateNotification(userID uint, notifType models.NotificationType, message string, relatedID *uint) (*models.Notification, error) {
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	notification := &models.Notification{
		UserID:    userID,
		Type:      notifType,
		Message:   message,
		Status:    models.NotificationStatusUnread,
		RelatedID: relatedID,
	}

	if err := database.DB.Create(notification).Error; err != nil {
		return nil, err
	}
	return notification, nil
}

// dispatchNotification is the fire-and-forget path used by lifecycle
// operations after their transaction has committed. It never
// propagates failure back to the caller.
func dispatchNotification(userID uint, notifType models.NotificationType, message string, relatedID uint) {
	related := relatedID
	if _, err := CreateNotification(userID, notifType, message, &related); err != nil {
		logger.Log.Warn("notification dispatch failed",
			zap.Uint("user_id", userID),
			zap.String("type", string(notifType)),
			zap.Error(err))
	}
}

// NotificationFilter defines criteria for listing a user's notifications.
type NotificationFilter struct {
	Status *models.NotificationStatus
	Type   *models.NotificationType
}

// FindUserNotifications returns a user's notifications in insertion order.
func FindUserNotifications(userID uint, filter NotificationFilter) ([]models.Notification, error) {
	query := database.DB.Where("user_id = ?", userID)
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}

	var notifications []models.Notification
	if err := query.Order("id asc").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func GetNotification(id uint) (*models.Notification, error) {
	var notification models.Notification
	if err := database.DB.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func UpdateNotificationStatus(id uint, status models.NotificationStatus) (*models.Notification, error) {
	notification, err := GetNotification(id)
	if err != nil {
		return nil, err
	}

	if err := database.DB.Model(notification).Update("status", status).Error; err != nil {
		return nil, err
	}
	return notification, nil
}

func DeleteNotification(id uint) error {
	result := database.DB.Delete(&models.Notification{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func CountUnreadNotifications(userID uint) (int64, error) {
	var count int64
	err := database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND status = ?", userID, models.NotificationStatusUnread).
		Count(&count).Error
	return count, err
}
