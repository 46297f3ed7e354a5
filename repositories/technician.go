package repositories

import (
	"github.com/civicfix-server/database"
	"github.com/civicfix-server/models"
)

// TechnicianRepository handles database operations for technicians
type TechnicianRepository struct{}

// NewTechnicianRepository creates a new technician repository instance
func NewTechnicianRepository() *TechnicianRepository {
	return &TechnicianRepository{}
}

// FindActive retrieves all active technicians in the database's default order.
func (r *TechnicianRepository) FindActive() ([]models.Technician, error) {
	var techs []models.Technician
	result := database.DB.Where("active = ?", true).Find(&techs)
	return techs, result.Error
}

// FindActiveOrdered retrieves active technicians sorted by name, for roster
// listings.
func (r *TechnicianRepository) FindActiveOrdered() ([]models.Technician, error) {
	var techs []models.Technician
	result := database.DB.Where("active = ?", true).Order("name asc").Find(&techs)
	return techs, result.Error
}

// FindActiveByName matches an active technician by case-insensitive exact name.
func (r *TechnicianRepository) FindActiveByName(name string) (models.Technician, error) {
	var tech models.Technician
	result := database.DB.
		Where("LOWER(name) = LOWER(?) AND active = ?", name, true).
		First(&tech)
	return tech, result.Error
}

// FirstActive returns an arbitrary active technician: the first row in the
// database's default order.
func (r *TechnicianRepository) FirstActive() (models.Technician, error) {
	var tech models.Technician
	result := database.DB.Where("active = ?", true).First(&tech)
	return tech, result.Error
}

// FindAll retrieves every technician, active or not.
func (r *TechnicianRepository) FindAll() ([]models.Technician, error) {
	var techs []models.Technician
	result := database.DB.Find(&techs)
	return techs, result.Error
}

// FindByName matches a technician by exact (case-sensitive) name.
func (r *TechnicianRepository) FindByName(name string) (models.Technician, error) {
	var tech models.Technician
	result := database.DB.Where("name = ?", name).First(&tech)
	return tech, result.Error
}

// Create inserts a new technician into the database
func (r *TechnicianRepository) Create(tech models.Technician) (models.Technician, error) {
	result := database.DB.Create(&tech)
	return tech, result.Error
}

// UpdateName renames a technician in place.
func (r *TechnicianRepository) UpdateName(id, name string) error {
	return database.DB.Model(&models.Technician{}).Where("id = ?", id).Update("name", name).Error
}

// Delete removes a technician row entirely.
func (r *TechnicianRepository) Delete(id string) error {
	return database.DB.Delete(&models.Technician{}, "id = ?", id).Error
}
