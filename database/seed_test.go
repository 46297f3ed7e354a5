package database

import (
	"testing"

	"github.com/civicfix-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("ADMIN_USERNAME", "aniket")
	t.Setenv("ADMIN_PASSWORD", "secret123")
	t.Setenv("TECH_PASSWORD", "tech-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestEnsureSeedData(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, EnsureSeedData(db))

	var admin models.User
	require.NoError(t, db.First(&admin, "username = ?", "aniket").Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, "9000000002", admin.Phone)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("secret123")))

	var techCount int64
	require.NoError(t, db.Model(&models.Technician{}).Count(&techCount).Error)
	assert.EqualValues(t, 10, techCount)

	var viraj models.Technician
	require.NoError(t, db.First(&viraj, "name = ?", "Viraj").Error)
	assert.Equal(t, "9000001001", viraj.Phone)
	assert.True(t, viraj.Active)
}

func TestEnsureSeedDataIsIdempotent(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, EnsureSeedData(db))

	// Drift: deactivate a technician and change the admin phone, then re-seed.
	require.NoError(t, db.Model(&models.Technician{}).Where("name = ?", "Neil").Update("active", false).Error)
	require.NoError(t, db.Model(&models.User{}).Where("username = ?", "aniket").Update("phone", "0").Error)

	require.NoError(t, EnsureSeedData(db))

	var userCount, techCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Technician{}).Count(&techCount).Error)
	assert.EqualValues(t, 1, userCount)
	assert.EqualValues(t, 10, techCount)

	var neil models.Technician
	require.NoError(t, db.First(&neil, "name = ?", "Neil").Error)
	assert.True(t, neil.Active)

	var admin models.User
	require.NoError(t, db.First(&admin, "username = ?", "aniket").Error)
	assert.Equal(t, "9000000002", admin.Phone)
}
