package repositories

import (
	"github.com/civicfix-server/database"
	"github.com/civicfix-server/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindAdminByUsername retrieves the admin row matching a lowercased username.
func (r *UserRepository) FindAdminByUsername(username string) (models.User, error) {
	var user models.User
	result := database.DB.Where("username = ? AND role = ?", username, models.RoleAdmin).First(&user)
	return user, result.Error
}

// FindCitizenByIdentity retrieves a citizen by case-insensitive name and
// exact government id. The pair acts as the citizen's identity.
func (r *UserRepository) FindCitizenByIdentity(name, governmentID string) (models.User, error) {
	var user models.User
	result := database.DB.
		Where("LOWER(name) = LOWER(?) AND government_id = ? AND role = ?", name, governmentID, models.RoleCitizen).
		First(&user)
	return user, result.Error
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user models.User) (models.User, error) {
	result := database.DB.Create(&user)
	return user, result.Error
}

// FindAdmins retrieves all admin users ordered by username.
func (r *UserRepository) FindAdmins() ([]models.User, error) {
	var users []models.User
	result := database.DB.Where("role = ?", models.RoleAdmin).Order("username asc").Find(&users)
	return users, result.Error
}
