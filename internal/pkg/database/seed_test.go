package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/korlavalasa/villageportal/app/models"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestSeedProvisionsBaseline(t *testing.T) {
	db := setupSeedDB(t)

	Seed(db)

	var roleCount int64
	require.NoError(t, db.Model(&models.Role{}).Where("name = ?", models.RoleAdmin).Count(&roleCount).Error)
	assert.Equal(t, int64(1), roleCount)

	var admin models.AdminUser
	require.NoError(t, db.Preload("Roles").First(&admin).Error)
	assert.Equal(t, "admin", admin.Username)
	assert.NotEmpty(t, admin.PasswordHash)
	assert.True(t, admin.HasRole(models.RoleAdmin))

	var infoCount int64
	require.NoError(t, db.Model(&models.VillageInfo{}).Count(&infoCount).Error)
	assert.Equal(t, int64(1), infoCount)

	var info models.VillageInfo
	require.NoError(t, db.First(&info).Error)
	assert.Equal(t, 3250, info.Population)
	assert.InDelta(t, 18.5, info.Area, 0.001)

	var newsCount, eventCount int64
	require.NoError(t, db.Model(&models.News{}).Count(&newsCount).Error)
	require.NoError(t, db.Model(&models.Event{}).Count(&eventCount).Error)
	assert.GreaterOrEqual(t, newsCount, int64(2))
	assert.GreaterOrEqual(t, eventCount, int64(2))
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupSeedDB(t)

	Seed(db)
	Seed(db)

	var userCount, infoCount, newsCount, eventCount int64
	require.NoError(t, db.Model(&models.AdminUser{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.VillageInfo{}).Count(&infoCount).Error)
	require.NoError(t, db.Model(&models.News{}).Count(&newsCount).Error)
	require.NoError(t, db.Model(&models.Event{}).Count(&eventCount).Error)

	assert.Equal(t, int64(1), userCount)
	assert.Equal(t, int64(1), infoCount)
	assert.Equal(t, int64(2), newsCount)
	assert.Equal(t, int64(2), eventCount)
}

func TestSeedKeepsExistingContent(t *testing.T) {
	db := setupSeedDB(t)
	Seed(db)

	// Operator edits survive a restart
	require.NoError(t, db.Model(&models.VillageInfo{}).Where("id > 0").
		Update("population", 9999).Error)

	Seed(db)

	var info models.VillageInfo
	require.NoError(t, db.First(&info).Error)
	assert.Equal(t, 9999, info.Population)
}
