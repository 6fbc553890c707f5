package models

import (
	"time"
)

// Role represents user role types
type Role string

const (
	RoleSeller        Role = "seller"
	RoleCoordinator   Role = "coordinator"
	RoleAdministrator Role = "administrator"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleSeller, RoleCoordinator, RoleAdministrator:
		return true
	}
	return false
}

// User represents a user in the system
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"not null"`
	Role         Role      `json:"role" gorm:"type:varchar(16);not null"`
	Active       bool      `json:"active" gorm:"not null;default:true"`
	PasswordHash string    `json:"-" gorm:"not null"` // Password hash is never exposed in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// Sanitized returns a copy of the user with the password hash stripped
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
