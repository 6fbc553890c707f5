package dto

import (
	"github.com/leadflow-simple/models"
)

// CreateUserRequest represents the data an administrator supplies for a
// new account
type CreateUserRequest struct {
	Email    string      `json:"email" binding:"required,email"`
	Name     string      `json:"name" binding:"required"`
	Role     models.Role `json:"role" binding:"required"`
	Password string      `json:"password" binding:"required,min=6"`
}

// UpdateUserRequest enumerates exactly the fields an administrator may
// patch on a user. Anything outside this list cannot be written through
// the update path.
type UpdateUserRequest struct {
	Name     *string      `json:"name"`
	Email    *string      `json:"email"`
	Role     *models.Role `json:"role"`
	Active   *bool        `json:"active"`
	Password *string      `json:"password"`
}
