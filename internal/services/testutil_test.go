package services

import (
	"microfinance-backend/internal/database"
	"microfinance-backend/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(
		&models.User{},
		&models.Account{},
		&models.Transaction{},
		&models.Loan{},
		&models.Repayment{},
		&models.Notification{},
		&models.AuditLog{},
	)
	db.AutoMigrate(
		&models.User{},
		&models.Account{},
		&models.Transaction{},
		&models.Loan{},
		&models.Repayment{},
		&models.Notification{},
		&models.AuditLog{},
	)

	database.DB = db
	database.RedisClient = nil
}

func setupTestRedis() *miniredis.Miniredis {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	database.RedisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return mr
}

func seedUser(email string, status models.UserStatus) *models.User {
	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "not-a-real-hash",
		Status:       status,
		Role:         models.UserRoleCustomer,
		Version:      1,
	}
	database.DB.Create(user)
	return user
}

func seedAccount(userID uint, balance decimal.Decimal, status models.AccountStatus) *models.Account {
	account := &models.Account{
		UserID:      userID,
		AccountType: models.AccountTypeSavings,
		Balance:     balance,
		Status:      status,
		Version:     1,
	}
	database.DB.Create(account)
	return account
}

func seedActiveLoan(userID, accountID uint, principal decimal.Decimal) *models.Loan {
	loan := &models.Loan{
		UserID:                userID,
		AccountID:             accountID,
		Amount:                principal,
		InterestRate:          decimal.NewFromInt(5),
		RepaymentPeriodMonths: 12,
		PrincipalBalance:      principal,
		TotalRepaid:           decimal.Zero,
		Status:                models.LoanStatusActive,
		Version:               1,
	}
	database.DB.Create(loan)
	return loan
}
