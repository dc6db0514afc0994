package report

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/reports/dashboard", Dashboard)
	router.GET("/audit-logs", ListAuditLogs)
}
