package models

import (
	"fmt"
	"time"
)

type NotificationType string

const (
	NotificationTypeInfo            NotificationType = "INFO"
	NotificationTypeWarning         NotificationType = "WARNING"
	NotificationTypeAlert           NotificationType = "ALERT"
	NotificationTypePromotion       NotificationType = "PROMOTION"
	NotificationTypeAccountCreated  NotificationType = "ACCOUNT_CREATED"
	NotificationTypeAccountApproved NotificationType = "ACCOUNT_APPROVED"
	NotificationTypeLoanApproved    NotificationType = "LOAN_APPROVED"
	NotificationTypeLoanRejected    NotificationType = "LOAN_REJECTED"
	NotificationTypePaymentReceived NotificationType = "PAYMENT_RECEIVED"
	NotificationTypePaymentDue      NotificationType = "PAYMENT_DUE"
	NotificationTypeCustom          NotificationType = "CUSTOM"
)

func ParseNotificationType(s string) (NotificationType, error) {
	switch NotificationType(s) {
	case NotificationTypeInfo, NotificationTypeWarning, NotificationTypeAlert,
		NotificationTypePromotion, NotificationTypeAccountCreated,
		NotificationTypeAccountApproved, NotificationTypeLoanApproved,
		NotificationTypeLoanRejected, NotificationTypePaymentReceived,
		NotificationTypePaymentDue, NotificationTypeCustom:
		return NotificationType(s), nil
	}
	return "", fmt.Errorf("%w: notification type %q", ErrInvalidEnumValue, s)
}

type NotificationStatus string

const (
	NotificationStatusUnread   NotificationStatus = "UNREAD"
	NotificationStatusRead     NotificationStatus = "READ"
	NotificationStatusArchived NotificationStatus = "ARCHIVED"
)

func ParseNotificationStatus(s string) (NotificationStatus, error) {
	switch NotificationStatus(s) {
	case NotificationStatusUnread, NotificationStatusRead, NotificationStatusArchived:
		return NotificationStatus(s), nil
	}
	return "", fmt.Errorf("%w: notification status %q", ErrInvalidEnumValue, s)
}

// Notification delivery is the act of durable storage; there is no
// external delivery channel.
type Notification struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UserID    uint               `gorm:"index;not null"`
	Type      NotificationType   `gorm:"type:varchar(30);not null"`
	Message   string             `gorm:"type:text;not null"`
	Status    NotificationStatus `gorm:"type:varchar(20);not null;default:'UNREAD'"`
	RelatedID *uint
}
