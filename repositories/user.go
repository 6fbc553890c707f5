package repositories

import (
	"github.com/leadflow-simple/models"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := r.db.First(&user, "id = ?", id)
	return user, result.Error
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := r.db.First(&user, "email = ?", email)
	return user, result.Error
}

// FindAll retrieves all users, capped at limit
func (r *UserRepository) FindAll(limit int) ([]models.User, error) {
	var users []models.User
	result := r.db.Limit(limit).Find(&users)
	return users, result.Error
}

// EmailTaken checks whether another user already holds the email
func (r *UserRepository) EmailTaken(email, excludeID string) (bool, error) {
	var count int64
	q := r.db.Model(&models.User{}).Where("email = ?", email)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user models.User) error {
	return r.db.Create(&user).Error
}

// Save writes back all fields of an existing user
func (r *UserRepository) Save(user models.User) error {
	return r.db.Save(&user).Error
}

// Count returns the number of users
func (r *UserRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&models.User{}).Count(&count)
	return count, result.Error
}

// FirstByRole returns the first user holding the given role
func (r *UserRepository) FirstByRole(role models.Role) (models.User, error) {
	var user models.User
	result := r.db.First(&user, "role = ?", role)
	return user, result.Error
}
