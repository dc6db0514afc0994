package repayment

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	repayments := router.Group("/repayments")
	repayments.POST("", CreateRepayment)
	repayments.GET("/:id", GetRepayment)

	router.GET("/loans/:id/repayments", ListLoanRepayments)
}
