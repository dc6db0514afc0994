package notification

import (
	"net/http"
	"strconv"

	"microfinance-backend/internal/api/v1/common/respond"
	"microfinance-backend/internal/models"
	"microfinance-backend/internal/services"
	"microfinance-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

func currentUser(c *gin.Context) (models.User, bool) {
	v, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}

func ownNotification(c *gin.Context) (*models.Notification, bool) {
	u, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return nil, false
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid ID"))
		return nil, false
	}

	n, err := services.GetNotification(uint(id))
	if err != nil {
		respond.Error(c, err)
		return nil, false
	}
	if n.UserID != u.ID {
		c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Forbidden"))
		return nil, false
	}
	return n, true
}

// ListNotifications godoc
// @Summary List the caller's notifications
// @Tags notification
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by type"
// @Success 200 {object} utils.Response{data=[]notification.NotificationResponse}
// @Router /notifications [get]
func ListNotifications(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	var filter services.NotificationFilter
	if s := c.Query("status"); s != "" {
		parsed, err := models.ParseNotificationStatus(s)
		if err != nil {
			respond.Error(c, err)
			return
		}
		filter.Status = &parsed
	}
	if t := c.Query("type"); t != "" {
		parsed, err := models.ParseNotificationType(t)
		if err != nil {
			respond.Error(c, err)
			return
		}
		filter.Type = &parsed
	}

	notifications, err := services.FindUserNotifications(u.ID, filter)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Notifications retrieved successfully", NewNotificationResponses(notifications)))
}

// UnreadCount godoc
// @Summary Count unread notifications
// @Tags notification
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response
// @Router /notifications/unread-count [get]
func UnreadCount(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	count, err := services.CountUnreadNotifications(u.ID)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Unread count retrieved successfully", gin.H{"count": count}))
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags notification
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=notification.NotificationResponse}
// @Failure 404 {object} utils.Response
// @Router /notifications/{id}/read [post]
func MarkRead(c *gin.Context) {
	n, ok := ownNotification(c)
	if !ok {
		return
	}

	updated, err := services.UpdateNotificationStatus(n.ID, models.NotificationStatusRead)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Notification marked as read", NewNotificationResponse(updated)))
}

// Archive godoc
// @Summary Archive a notification
// @Tags notification
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=notification.NotificationResponse}
// @Failure 404 {object} utils.Response
// @Router /notifications/{id}/archive [post]
func Archive(c *gin.Context) {
	n, ok := ownNotification(c)
	if !ok {
		return
	}

	updated, err := services.UpdateNotificationStatus(n.ID, models.NotificationStatusArchived)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Notification archived", NewNotificationResponse(updated)))
}

// Delete godoc
// @Summary Delete a notification
// @Tags notification
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /notifications/{id} [delete]
func Delete(c *gin.Context) {
	n, ok := ownNotification(c)
	if !ok {
		return
	}

	if err := services.DeleteNotification(n.ID); err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Notification deleted", nil))
}
