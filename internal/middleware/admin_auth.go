package middleware

import (
	"net/http"

	"microfinance-backend/internal/models"
	"microfinance-backend/internal/services"
	"microfinance-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware validates that the caller holds the ADMIN role.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := utils.ExtractToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, err.Error()))
			c.Abort()
			return
		}

		isDenylisted, err := services.IsDenylisted(tokenString)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to check token status"))
			c.Abort()
			return
		}
		if isDenylisted {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Token has been revoked"))
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Invalid or expired token"))
			c.Abort()
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(models.UserRoleAdmin) {
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Forbidden: Admins only"))
			c.Abort()
			return
		}

		// Loading the user object is skipped in TestMode so middleware
		// tests can run without a database.
		if gin.Mode() != gin.TestMode {
			userIDFloat, ok := claims["user_id"].(float64)
			if ok {
				userID := uint(userIDFloat)
				user, err := services.FindUserByID(userID)
				if err == nil {
					c.Set("user", user)
				}
			}
		}

		c.Next()
	}
}
