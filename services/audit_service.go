package services

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/leadflow-simple/models"
)

// defaultAuditLimit caps audit listings when no limit is given
const defaultAuditLimit = 100

// AuditRecorder is implemented by the audit service and consumed by
// every mutating service
type AuditRecorder interface {
	Record(actorID, actorName string, action models.AuditAction, entityKind, entityID, detail string)
}

// AuditStore is the subset of the audit repository the service needs
type AuditStore interface {
	Create(entry models.AuditLog) error
	FindRecent(limit int) ([]models.AuditLog, error)
}

// AuditService appends entries to the audit trail
type AuditService struct {
	logs AuditStore
}

// NewAuditService creates a new audit service instance
func NewAuditService(logs AuditStore) *AuditService {
	return &AuditService{logs: logs}
}

// Record appends one entry after a business mutation has committed.
// Failures are logged and swallowed: a lost log line must not roll back
// the mutation it documents.
func (s *AuditService) Record(actorID, actorName string, action models.AuditAction, entityKind, entityID, detail string) {
	entry := models.AuditLog{
		ID:         uuid.NewString(),
		ActorID:    actorID,
		ActorName:  actorName,
		Action:     action,
		EntityKind: entityKind,
		EntityID:   entityID,
		Detail:     detail,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.logs.Create(entry); err != nil {
		log.Printf("audit: failed to record %s %s/%s: %v", action, entityKind, entityID, err)
	}
}

// List returns the most recent entries, newest first
func (s *AuditService) List(limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	return s.logs.FindRecent(limit)
}
