package models

import (
	"time"
)

// AuditAction represents the kind of action recorded in the audit trail
type AuditAction string

const (
	ActionCreate AuditAction = "CREATE"
	ActionUpdate AuditAction = "UPDATE"
	ActionBackup AuditAction = "BACKUP"
)

// AuditLog is an append-only record of who did what to which entity.
// Entries are never updated or deleted.
type AuditLog struct {
	ID         string      `json:"id" gorm:"primaryKey;type:uuid"`
	ActorID    string      `json:"actor_id" gorm:"type:uuid;not null"`
	ActorName  string      `json:"actor_name" gorm:"not null"`
	Action     AuditAction `json:"action" gorm:"type:varchar(16);not null"`
	EntityKind string      `json:"entity_kind" gorm:"not null"`
	EntityID   string      `json:"entity_id" gorm:"not null"`
	Detail     string      `json:"detail,omitempty"`
	CreatedAt  time.Time   `json:"created_at" gorm:"index"`
}
