package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records admin lifecycle operations. Append-only.
type AuditLog struct {
	ID         uint `gorm:"primarykey"`
	CreatedAt  time.Time
	ActorID    uint           `gorm:"index"`
	Action     string         `gorm:"size:100;not null"`
	EntityType string         `gorm:"size:50;not null"`
	EntityID   uint           `gorm:"index"`
	Details    datatypes.JSON `gorm:"type:jsonb"`
}
