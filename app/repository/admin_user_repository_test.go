package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/korlavalasa/villageportal/app/models"
)

func createTestAdmin(t *testing.T, db *gorm.DB, password string) *models.AdminUser {
	t.Helper()

	role := models.Role{Name: models.RoleAdmin}
	require.NoError(t, db.Create(&role).Error)

	user := &models.AdminUser{
		Username: "admin",
		Email:    "admin@example.com",
		Roles:    []models.Role{role},
	}
	require.NoError(t, user.SetPassword(password))
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestAuthenticateSuccess(t *testing.T) {
	db := setupTestDB(t)
	createTestAdmin(t, db, "correct-horse")
	repo := NewAdminUserRepository(db)

	result, err := repo.Authenticate("admin", "correct-horse")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.Locked)
	require.NotNil(t, result.User)
	assert.True(t, result.User.HasRole(models.RoleAdmin), "roles are preloaded")
	assert.NotNil(t, result.User.LastLoginAt)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	createTestAdmin(t, db, "correct-horse")
	repo := NewAdminUserRepository(db)

	result, err := repo.Authenticate("admin", "wrong")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.False(t, result.Locked)

	stored, err := repo.GetByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, 1, stored.FailedLogins, "failure counter is persisted")
}

func TestAuthenticateUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminUserRepository(db)

	result, err := repo.Authenticate("nobody", "whatever")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.False(t, result.Locked)
	assert.Nil(t, result.User)
}

func TestAuthenticateLocksAfterFiveFailures(t *testing.T) {
	db := setupTestDB(t)
	createTestAdmin(t, db, "correct-horse")
	repo := NewAdminUserRepository(db)

	for i := 0; i < models.MaxFailedLogins-1; i++ {
		result, err := repo.Authenticate("admin", "wrong")
		require.NoError(t, err)
		assert.False(t, result.Locked, "attempt %d must not lock yet", i+1)
	}

	result, err := repo.Authenticate("admin", "wrong")
	require.NoError(t, err)
	assert.True(t, result.Locked, "fifth failure starts the lockout")

	// The correct password is rejected while the lock holds
	result, err = repo.Authenticate("admin", "correct-horse")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.True(t, result.Locked)
}

func TestAuthenticateAfterLockExpires(t *testing.T) {
	db := setupTestDB(t)
	user := createTestAdmin(t, db, "correct-horse")
	repo := NewAdminUserRepository(db)

	expired := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(&models.AdminUser{}).Where("id = ?", user.ID).
		Update("locked_until", expired).Error)

	result, err := repo.Authenticate("admin", "correct-horse")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.Locked)

	stored, err := repo.GetByUsername("admin")
	require.NoError(t, err)
	assert.Nil(t, stored.LockedUntil, "lockout state is cleared on success")
}
