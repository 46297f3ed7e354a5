package repositories

import (
	"github.com/civicfix-server/database"
	"github.com/civicfix-server/models"
	"gorm.io/datatypes"
)

// IssueRepository handles database operations for issues
type IssueRepository struct{}

// NewIssueRepository creates a new issue repository instance
func NewIssueRepository() *IssueRepository {
	return &IssueRepository{}
}

// FindAllNewestFirst retrieves every issue sorted by creation time descending.
// No pagination: the expected scale is a full scan.
func (r *IssueRepository) FindAllNewestFirst() ([]models.Issue, error) {
	var issues []models.Issue
	result := database.DB.Order("created_at desc").Find(&issues)
	return issues, result.Error
}

// FindAll retrieves every issue in default order.
func (r *IssueRepository) FindAll() ([]models.Issue, error) {
	var issues []models.Issue
	result := database.DB.Find(&issues)
	return issues, result.Error
}

// FindByID retrieves an issue by its ID
func (r *IssueRepository) FindByID(id string) (models.Issue, error) {
	var issue models.Issue
	result := database.DB.First(&issue, "id = ?", id)
	return issue, result.Error
}

// Create inserts a new issue into the database
func (r *IssueRepository) Create(issue models.Issue) (models.Issue, error) {
	result := database.DB.Create(&issue)
	return issue, result.Error
}

// UpdateStatus overwrites only the status field of an issue.
func (r *IssueRepository) UpdateStatus(id string, status models.IssueStatus) error {
	return database.DB.Model(&models.Issue{}).Where("id = ?", id).Update("status", status).Error
}

// UpdateAssignedTo overwrites only the assigned technician pair of an issue.
func (r *IssueRepository) UpdateAssignedTo(id string, assignedTo []string) error {
	return database.DB.Model(&models.Issue{}).
		Where("id = ?", id).
		Update("assigned_to", datatypes.NewJSONSlice(assignedTo)).Error
}

// Delete hard-deletes an issue by id.
func (r *IssueRepository) Delete(id string) error {
	return database.DB.Delete(&models.Issue{}, "id = ?", id).Error
}
