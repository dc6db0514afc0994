package loan

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	loans := router.Group("/loans")
	loans.POST("", CreateLoan)
	loans.GET("", ListLoans)
	loans.GET("/:id", GetLoan)
}
