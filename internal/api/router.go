package api

import (
	"microfinance-backend/config"
	accountRoutes "microfinance-backend/internal/api/v1/account"
	adminAccount "microfinance-backend/internal/api/v1/admin/account"
	adminLoan "microfinance-backend/internal/api/v1/admin/loan"
	adminNotification "microfinance-backend/internal/api/v1/admin/notification"
	adminRepayment "microfinance-backend/internal/api/v1/admin/repayment"
	adminReport "microfinance-backend/internal/api/v1/admin/report"
	adminTransaction "microfinance-backend/internal/api/v1/admin/transaction"
	adminUser "microfinance-backend/internal/api/v1/admin/user"
	"microfinance-backend/internal/api/v1/auth"
	loanRoutes "microfinance-backend/internal/api/v1/loan"
	notificationRoutes "microfinance-backend/internal/api/v1/notification"
	repaymentRoutes "microfinance-backend/internal/api/v1/repayment"
	transactionRoutes "microfinance-backend/internal/api/v1/transaction"
	userRoutes "microfinance-backend/internal/api/v1/user"
	"microfinance-backend/internal/database"
	"microfinance-backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	_, err = database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	err = database.ConnectRedis(cfg)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1
	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1)

		authorized := v1.Group("/")
		authorized.Use(middleware.AuthMiddleware())
		{
			userRoutes.RegisterRoutes(authorized)
			accountRoutes.RegisterRoutes(authorized)
			transactionRoutes.RegisterRoutes(authorized)
			loanRoutes.RegisterRoutes(authorized)
			repaymentRoutes.RegisterRoutes(authorized)
			notificationRoutes.RegisterRoutes(authorized)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			adminUser.RegisterRoutes(admin)
			adminAccount.RegisterRoutes(admin)
			adminLoan.RegisterRoutes(admin)
			adminTransaction.RegisterRoutes(admin)
			adminRepayment.RegisterRoutes(admin)
			adminNotification.RegisterRoutes(admin)
			adminReport.RegisterRoutes(admin)
		}
	}

	return router, nil
}
