package notification

import (
	"time"

	"microfinance-backend/internal/models"
)

type NotificationResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	RelatedID *uint     `json:"relatedId,omitempty"`
	SentAt    time.Time `json:"sentAt"`
}

func NewNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Message:   n.Message,
		Status:    string(n.Status),
		RelatedID: n.RelatedID,
		SentAt:    n.CreatedAt,
	}
}

func NewNotificationResponses(notifications []models.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		out = append(out, NewNotificationResponse(&notifications[i]))
	}
	return out
}
