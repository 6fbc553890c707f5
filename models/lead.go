package models

import (
	"time"
)

const (
	// DefaultLeadStatus is stamped on every freshly created lead
	DefaultLeadStatus = "New"
	// EnrolledStatus marks a lead that converted into an enrollment
	EnrolledStatus = "Enrolled"
)

// Lead represents a prospective-student record tracked through the sales pipeline
type Lead struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	FullName  string    `json:"full_name" gorm:"not null"`
	Phone     string    `json:"phone" gorm:"not null"`
	Course    string    `json:"course" gorm:"not null"`
	Status    string    `json:"status" gorm:"not null"`
	OwnerID   string    `json:"owner_id" gorm:"type:uuid;not null;index"`
	OwnerName string    `json:"owner_name" gorm:"not null"` // denormalized copy taken at creation time
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
