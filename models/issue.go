package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// IssueStatus enum
type IssueStatus string

const (
	StatusPending    IssueStatus = "pending"
	StatusInProgress IssueStatus = "in_progress"
	StatusResolved   IssueStatus = "resolved"
)

// IssueCategory enum
type IssueCategory string

const (
	CategoryPothole     IssueCategory = "pothole"
	CategoryGarbage     IssueCategory = "garbage"
	CategoryStreetlight IssueCategory = "streetlight"
	CategoryUtility     IssueCategory = "utility"
	CategoryOther       IssueCategory = "other"
)

// ValidStatus reports whether s is one of the allowed lifecycle states.
func ValidStatus(s string) bool {
	switch IssueStatus(s) {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// ValidCategory reports whether c is one of the allowed report categories.
func ValidCategory(c string) bool {
	switch IssueCategory(c) {
	case CategoryPothole, CategoryGarbage, CategoryStreetlight, CategoryUtility, CategoryOther:
		return true
	}
	return false
}

// Issue represents a citizen-reported civic problem. AssignedTo holds exactly
// two technician names; it is a denormalized reference with no foreign key,
// which is why the maintenance cleanup job exists.
type Issue struct {
	ID          string                      `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string                      `json:"title" gorm:"not null"`
	Description string                      `json:"description" gorm:"default:''"`
	Location    string                      `json:"location" gorm:"not null"`
	Status      IssueStatus                 `json:"status" gorm:"type:varchar(16);default:'pending'"`
	Date        string                      `json:"date" gorm:"not null"` // ISO day, stamped at creation
	Image       string                      `json:"image,omitempty"`
	Category    IssueCategory               `json:"category" gorm:"type:varchar(16);not null"`
	AssignedTo  datatypes.JSONSlice[string] `json:"assignedTo"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

func (i *Issue) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
