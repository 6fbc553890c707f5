package repositories

import (
	"github.com/leadflow-simple/dto"
	"github.com/leadflow-simple/models"
	"gorm.io/gorm"
)

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository instance
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create inserts a new lead into the database
func (r *LeadRepository) Create(lead models.Lead) error {
	return r.db.Create(&lead).Error
}

// FindByID retrieves a lead by its ID
func (r *LeadRepository) FindByID(id string) (models.Lead, error) {
	var lead models.Lead
	result := r.db.First(&lead, "id = ?", id)
	return lead, result.Error
}

// FindByOwner retrieves leads belonging to a seller, capped at limit
func (r *LeadRepository) FindByOwner(ownerID string, limit int) ([]models.Lead, error) {
	var leads []models.Lead
	result := r.db.Where("owner_id = ?", ownerID).Limit(limit).Find(&leads)
	return leads, result.Error
}

// CountByOwner counts leads belonging to a seller
func (r *LeadRepository) CountByOwner(ownerID string) (int64, error) {
	var count int64
	result := r.db.Model(&models.Lead{}).Where("owner_id = ?", ownerID).Count(&count)
	return count, result.Error
}

// FindFiltered retrieves leads matching the ANDed equality filters,
// capped at limit. Empty filter fields impose no constraint.
func (r *LeadRepository) FindFiltered(filter dto.LeadFilter, limit int) ([]models.Lead, error) {
	q := r.db.Model(&models.Lead{})
	if filter.Course != "" {
		q = q.Where("course = ?", filter.Course)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.OwnerID != "" {
		q = q.Where("owner_id = ?", filter.OwnerID)
	}

	var leads []models.Lead
	result := q.Order("created_at").Limit(limit).Find(&leads)
	return leads, result.Error
}

// Count returns the total number of leads
func (r *LeadRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&models.Lead{}).Count(&count)
	return count, result.Error
}

// Save writes back all fields of an existing lead
func (r *LeadRepository) Save(lead models.Lead) error {
	return r.db.Save(&lead).Error
}
