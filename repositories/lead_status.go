package repositories

import (
	"github.com/leadflow-simple/models"
	"gorm.io/gorm"
)

// LeadStatusRepository handles database operations for lead statuses
type LeadStatusRepository struct {
	db *gorm.DB
}

// NewLeadStatusRepository creates a new lead status repository instance
func NewLeadStatusRepository(db *gorm.DB) *LeadStatusRepository {
	return &LeadStatusRepository{db: db}
}

// FindAll retrieves all lead statuses, capped at limit
func (r *LeadStatusRepository) FindAll(limit int) ([]models.LeadStatus, error) {
	var statuses []models.LeadStatus
	result := r.db.Limit(limit).Find(&statuses)
	return statuses, result.Error
}

// Create inserts a new lead status into the database
func (r *LeadStatusRepository) Create(status models.LeadStatus) error {
	return r.db.Create(&status).Error
}

// NameExists checks whether a status with the given name is defined
func (r *LeadStatusRepository) NameExists(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.LeadStatus{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// Count returns the number of lead statuses
func (r *LeadStatusRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&models.LeadStatus{}).Count(&count)
	return count, result.Error
}
