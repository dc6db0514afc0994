package notification

type CreateNotificationInput struct {
	UserID  uint   `json:"userId" binding:"required"`
	Type    string `json:"type" binding:"required"`
	Message string `json:"message" binding:"required,max=500"`
}
