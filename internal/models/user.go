package models

import (
	"fmt"
	"time"
)

type UserStatus string

const (
	UserStatusPending  UserStatus = "PENDING"
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
	UserStatusBanned   UserStatus = "BANNED"
)

func ParseUserStatus(s string) (UserStatus, error) {
	switch UserStatus(s) {
	case UserStatusPending, UserStatusActive, UserStatusInactive, UserStatusBanned:
		return UserStatus(s), nil
	}
	return "", fmt.Errorf("%w: user status %q", ErrInvalidEnumValue, s)
}

type UserRole string

const (
	UserRoleCustomer UserRole = "CUSTOMER"
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleSupport  UserRole = "SUPPORT"
	UserRoleAuditor  UserRole = "AUDITOR"
)

func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case UserRoleCustomer, UserRoleAdmin, UserRoleSupport, UserRoleAuditor:
		return UserRole(s), nil
	}
	return "", fmt.Errorf("%w: user role %q", ErrInvalidEnumValue, s)
}

// User is created PENDING on registration and becomes ACTIVE only via
// admin approval.
type User struct {
	ID           uint `gorm:"primarykey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Name         string     `gorm:"size:100;not null"`
	Email        string     `gorm:"uniqueIndex;size:150;not null"`
	Phone        string     `gorm:"size:20"`
	PasswordHash string     `gorm:"size:255;not null"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`
	Role         UserRole   `gorm:"type:varchar(20);not null;default:'CUSTOMER'"`
	Version      int        `gorm:"default:1"`
}
