package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Technician represents a field worker. The name is the identity other
// records reference: Issue.AssignedTo stores technician names, not ids.
// PasswordHash is seeded but never checked — technician login bypasses it.
type Technician struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name         string    `json:"name" gorm:"not null"`
	Phone        string    `json:"phone" gorm:"not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Active       bool      `json:"active" gorm:"default:true"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (t *Technician) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
