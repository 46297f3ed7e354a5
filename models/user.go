package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role represents user role types
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
	RoleCitizen    Role = "citizen"
)

// User represents an account in the system: the seeded admin or a citizen
// created lazily on first login. Citizens are keyed by (name, government id);
// the synthetic username only satisfies the unique index.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" gorm:"type:varchar(16);not null"`
	Phone        string    `json:"phone,omitempty"`
	Name         string    `json:"name,omitempty"`
	GovernmentID string    `json:"-" gorm:"column:government_id"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a UUID primary key. Done in the hook rather than a
// column default so the sqlite test driver behaves like postgres.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
