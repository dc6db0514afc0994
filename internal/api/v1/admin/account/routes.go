package account

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	accounts := router.Group("/accounts")
	accounts.PATCH("/:id/status", UpdateStatus)
}
