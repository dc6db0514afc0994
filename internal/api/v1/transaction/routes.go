package transaction

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	transactions := router.Group("/transactions")
	transactions.POST("", CreateTransaction)
	transactions.GET("", ListTransactions)
	transactions.GET("/export", ExportStatement)
	transactions.GET("/:id", GetTransaction)
}
