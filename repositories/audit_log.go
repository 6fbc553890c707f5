package repositories

import (
	"github.com/leadflow-simple/models"
	"gorm.io/gorm"
)

// AuditLogRepository handles database operations for the audit trail.
// The trail is append-only: there are no update or delete paths.
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository instance
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create appends a new entry to the audit trail
func (r *AuditLogRepository) Create(entry models.AuditLog) error {
	return r.db.Create(&entry).Error
}

// FindRecent retrieves the most recent entries, newest first
func (r *AuditLogRepository) FindRecent(limit int) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	result := r.db.Order("created_at DESC").Limit(limit).Find(&entries)
	return entries, result.Error
}
