package notification

import (
	"net/http"

	"microfinance-backend/internal/api/v1/common/respond"
	v1notification "microfinance-backend/internal/api/v1/notification"
	"microfinance-backend/internal/models"
	"microfinance-backend/internal/services"
	"microfinance-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// CreateNotification godoc
// @Summary Send a notification to a user
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body CreateNotificationInput true "Notification Input"
// @Success 201 {object} utils.Response{data=notification.NotificationResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/notifications [post]
func CreateNotification(c *gin.Context) {
	var input CreateNotificationInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	notifType, err := models.ParseNotificationType(input.Type)
	if err != nil {
		respond.Error(c, err)
		return
	}

	n, err := services.CreateNotification(input.UserID, notifType, input.Message, nil)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Notification sent successfully", v1notification.NewNotificationResponse(n)))
}
