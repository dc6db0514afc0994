package services

import (
	"encoding/json"

	"microfinance-backend/internal/database"
	"microfinance-backend/internal/models"
	"microfinance-backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// recordAudit appends an audit row for an admin lifecycle operation.
// Audit failures are logged, never propagated.
func recordAudit(actorID uint, action, entityType string, entityID uint, details map[string]interface{}) {
	var detailsJSON datatypes.JSON
	if details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			logger.Log.Warn("audit details marshal failed", zap.String("action", action), zap.Error(err))
		} else {
			detailsJSON = datatypes.JSON(raw)
		}
	}

	entry := &models.AuditLog{
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    detailsJSON,
	}

	if err := database.DB.Create(entry).Error; err != nil {
		logger.Log.Warn("audit log write failed", zap.String("action", action), zap.Error(err))
	}
}

// FindAuditLogs returns a paginated slice of the audit trail, newest first.
func FindAuditLogs(page, limit int) ([]models.AuditLog, int64, error) {
	var entries []models.AuditLog
	var total int64

	if err := database.DB.Model(&models.AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := database.DB.Order("id desc").Limit(limit).Offset(offset).Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
