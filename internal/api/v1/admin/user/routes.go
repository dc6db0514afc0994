package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.GET("", ListUsers)
	users.POST("", CreateUser)
	users.GET("/:id", GetUser)
	users.POST("/:id/approve", ApproveUser)
	users.POST("/:id/suspend", SuspendUser)
	users.POST("/:id/ban", BanUser)
	users.DELETE("/:id", DeleteUser)
}
