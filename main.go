package main

import (
	"errors"
	"log"

	"microfinance-backend/config"
	"microfinance-backend/internal/api"
	"microfinance-backend/internal/database"
	"microfinance-backend/internal/models"
	"microfinance-backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// @title microfinance-backend API
// @version 1.0
// @description Back-office API for a microfinance institution: users, accounts, loans, repayments, transactions and notifications.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	err = database.DB.AutoMigrate(
		&models.User{},
		&models.Account{},
		&models.Transaction{},
		&models.Loan{},
		&models.Repayment{},
		&models.Notification{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	initAdminUser()

	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

func initAdminUser() {
	adminEmail := "admin@microfinance.local"
	adminPassword := "ChangeMe1234"

	var adminUser models.User
	result := database.DB.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Fatalf("failed to hash admin password: %v", err)
			}

			adminUser = models.User{
				Name:         "Administrator",
				Email:        adminEmail,
				PasswordHash: string(hashedPassword),
				Status:       models.UserStatusActive,
				Role:         models.UserRoleAdmin,
			}

			if err := database.DB.Create(&adminUser).Error; err != nil {
				log.Fatalf("failed to create admin user: %v", err)
			}
			log.Println("Admin user created successfully!")
		} else {
			log.Fatalf("failed to check for admin user: %v", result.Error)
		}
	} else {
		log.Println("Admin user already exists.")
	}
}
