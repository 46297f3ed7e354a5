package database

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/civicfix-server/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Initialize sets up the GORM database connection and migrates the schema.
// A missing or unreachable DATABASE_URL is fatal: the process exits non-zero.
func Initialize() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		slog.Error("missing DATABASE_URL environment variable")
		os.Exit(1)
	}

	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := DB.DB()
	if err != nil {
		slog.Error("failed to get SQL DB", "error", err)
		os.Exit(1)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(DB); err != nil {
		slog.Error("failed to auto migrate", "error", err)
		os.Exit(1)
	}

	slog.Info("connected to database")
}

// Migrate applies the schema for all CivicFix models. Split out from
// Initialize so tests can run it against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Technician{},
		&models.Issue{},
	)
}
