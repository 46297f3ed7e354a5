package database

import (
	"errors"
	"log/slog"

	"github.com/civicfix-server/config"
	"github.com/civicfix-server/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// technicianNames is the fixed roster seeded on startup, with deterministic
// phone numbers. Names are stored proper-cased; the maintenance cleanup job
// repairs drift back toward these.
var technicianNames = []string{
	"Viraj",
	"Srushti",
	"Samruddhi",
	"Vaishnavi",
	"Harshit",
	"Neil",
	"Adarsh",
	"Ram",
	"Malhar",
	"Vinayak",
}

var technicianPhones = map[string]string{
	"Viraj":     "9000001001",
	"Srushti":   "9000001002",
	"Samruddhi": "9000001003",
	"Vaishnavi": "9000001004",
	"Harshit":   "9000001005",
	"Neil":      "9000001006",
	"Adarsh":    "9000001007",
	"Ram":       "9000001008",
	"Malhar":    "9000001009",
	"Vinayak":   "9000001010",
}

// EnsureSeedData idempotently upserts the single admin account and the fixed
// technician roster. Safe to run on every startup. Credentials come from
// required environment variables; there are no built-in defaults.
func EnsureSeedData(db *gorm.DB) error {
	adminUsername := config.AdminUsername()
	adminPassword := config.MustGetEnv("ADMIN_PASSWORD")
	techPassword := config.MustGetEnv("TECH_PASSWORD")

	adminHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var admin models.User
	err = db.Where("username = ?", adminUsername).First(&admin).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin = models.User{
			Username:     adminUsername,
			PasswordHash: string(adminHash),
			Role:         models.RoleAdmin,
			Phone:        "9000000002",
			Name:         adminUsername,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		updates := map[string]interface{}{
			"role":          models.RoleAdmin,
			"password_hash": string(adminHash),
			"phone":         "9000000002",
			"name":          adminUsername,
		}
		if err := db.Model(&admin).Updates(updates).Error; err != nil {
			return err
		}
	}
	slog.Info("ensured admin account", "username", adminUsername)

	techHash, err := bcrypt.GenerateFromPassword([]byte(techPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, name := range technicianNames {
		phone := technicianPhones[name]
		if phone == "" {
			phone = "9000001999"
		}

		var tech models.Technician
		err := db.Where("name = ?", name).First(&tech).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			tech = models.Technician{
				Name:         name,
				Phone:        phone,
				PasswordHash: string(techHash),
				Active:       true,
			}
			if err := db.Create(&tech).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			updates := map[string]interface{}{
				"phone":         phone,
				"password_hash": string(techHash),
				"active":        true,
			}
			if err := db.Model(&tech).Updates(updates).Error; err != nil {
				return err
			}
		}
	}
	slog.Info("ensured technician roster", "count", len(technicianNames))

	return nil
}
