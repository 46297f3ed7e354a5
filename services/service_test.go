package services

import (
	"testing"

	"github.com/civicfix-server/database"
	"github.com/civicfix-server/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB points the shared connection at an in-memory database. Tests
// using it must not run in parallel.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_USERNAME", "aniket")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	return db
}

func seedAdmin(t *testing.T, db *gorm.DB, username, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Phone:        "9000000002",
		Name:         username,
	}
	require.NoError(t, db.Create(&admin).Error)
	return admin
}

func seedTechnician(t *testing.T, db *gorm.DB, name string, active bool) models.Technician {
	t.Helper()
	tech := models.Technician{
		Name:         name,
		Phone:        "9000001999",
		PasswordHash: "unused",
		Active:       active,
	}
	require.NoError(t, db.Create(&tech).Error)
	return tech
}
