package loan

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	loans := router.Group("/loans")
	loans.GET("", ListLoans)
	loans.POST("/:id/approve", ApproveLoan)
	loans.POST("/:id/reject", RejectLoan)
	loans.POST("/:id/disburse", DisburseLoan)
	loans.POST("/:id/close", CloseLoan)
	loans.POST("/:id/default", MarkDefaulted)
}
