package notification

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications")
	notifications.GET("", ListNotifications)
	notifications.GET("/unread-count", UnreadCount)
	notifications.POST("/:id/read", MarkRead)
	notifications.POST("/:id/archive", Archive)
	notifications.DELETE("/:id", Delete)
}
