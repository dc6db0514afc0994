package services

import (
	"testing"

	"microfinance-backend/internal/database"
	"microfinance-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestUserStatusTransitions(t *testing.T) {
	setupTestDB()
	user := seedUser("transitions@example.com", models.UserStatusPending)

	approved, err := ApproveUser(user.ID, 1)
	assert.NoError(t, err)
	assert.Equal(t, models.UserStatusActive, approved.Status)

	suspended, err := SuspendUser(user.ID, "fraud review", 1)
	assert.NoError(t, err)
	assert.Equal(t, models.UserStatusInactive, suspended.Status)

	banned, err := BanUser(user.ID, "confirmed fraud", 1)
	assert.NoError(t, err)
	assert.Equal(t, models.UserStatusBanned, banned.Status)

	// Each transition leaves an audit row.
	var count int64
	database.DB.Model(&models.AuditLog{}).Where("entity_type = ?", "user").Count(&count)
	assert.Equal(t, int64(3), count)
}

func TestDeleteUserIsSoft(t *testing.T) {
	setupTestDB()
	user := seedUser("softdelete@example.com", models.UserStatusActive)

	err := DeleteUser(user.ID, 1)
	assert.NoError(t, err)

	// The row survives with status INACTIVE.
	var stored models.User
	assert.NoError(t, database.DB.First(&stored, user.ID).Error)
	assert.Equal(t, models.UserStatusInactive, stored.Status)
}

func TestFindUserByIDUsesCache(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	user := seedUser("cached@example.com", models.UserStatusActive)

	first, err := FindUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, user.Email, first.Email)

	// Second lookup is served from the cache even if the row vanishes.
	database.DB.Unscoped().Delete(&models.User{}, user.ID)

	second, err := FindUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, user.Email, second.Email)

	_, err = FindUserByID(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUsersFilters(t *testing.T) {
	setupTestDB()
	seedUser("findme@example.com", models.UserStatusActive)
	seedUser("other@example.com", models.UserStatusPending)

	active := models.UserStatusActive
	users, total, err := FindUsers(UserFilter{Status: &active, Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, users, 1)

	users, total, err = FindUsers(UserFilter{Search: "findme", Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "findme@example.com", users[0].Email)
}

func TestCreateUserWithExplicitRole(t *testing.T) {
	setupTestDB()

	user, err := CreateUser("Support Agent", "support@example.com", "", "hunter22", "SUPPORT", "ACTIVE")
	assert.NoError(t, err)
	assert.Equal(t, models.UserRoleSupport, user.Role)
	assert.Equal(t, models.UserStatusActive, user.Status)

	_, err = CreateUser("Bad Role", "badrole@example.com", "", "hunter22", "OVERLORD", "ACTIVE")
	assert.ErrorIs(t, err, models.ErrInvalidEnumValue)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	setupTestDB()
	user := seedUser("update@example.com", models.UserStatusActive)

	updated, err := UpdateUser(user.ID, map[string]interface{}{
		"name":     "Renamed",
		"password": "new-secret",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.NotEqual(t, "new-secret", updated.PasswordHash)
	assert.NotEqual(t, user.PasswordHash, updated.PasswordHash)
}
