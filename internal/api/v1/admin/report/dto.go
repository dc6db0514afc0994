package report

import (
	"encoding/json"
	"time"

	"microfinance-backend/internal/models"
)

type AuditLogResponse struct {
	ID         uint            `json:"id"`
	ActorID    uint            `json:"actorId"`
	Action     string          `json:"action"`
	EntityType string          `json:"entityType"`
	EntityID   uint            `json:"entityId"`
	Details    json.RawMessage `json:"details,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}

func newAuditLogResponses(entries []models.AuditLog) []AuditLogResponse {
	out := make([]AuditLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, AuditLogResponse{
			ID:         e.ID,
			ActorID:    e.ActorID,
			Action:     e.Action,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Details:    json.RawMessage(e.Details),
			Timestamp:  e.CreatedAt,
		})
	}
	return out
}

type PagedAuditLogs struct {
	Items []AuditLogResponse `json:"items"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
