package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/leadflow-simple/dto"
	"github.com/leadflow-simple/models"
	"github.com/leadflow-simple/utils"
	"gorm.io/gorm"
)

const maxUserListing = 1000

// UserStore is the subset of the user repository the service needs
type UserStore interface {
	FindByID(id string) (models.User, error)
	FindAll(limit int) ([]models.User, error)
	EmailTaken(email, excludeID string) (bool, error)
	Create(user models.User) error
	Save(user models.User) error
}

// UserService handles administrator-side user management
type UserService struct {
	users UserStore
	audit AuditRecorder
}

// NewUserService creates a new user service instance
func NewUserService(users UserStore, audit AuditRecorder) *UserService {
	return &UserService{users: users, audit: audit}
}

// List retrieves all users with password hashes stripped
func (s *UserService) List() ([]models.User, error) {
	users, err := s.users.FindAll(maxUserListing)
	if err != nil {
		return nil, utils.Wrap(utils.KindInternal, "Failed to list users", err)
	}
	sanitized := make([]models.User, len(users))
	for i, u := range users {
		sanitized[i] = u.Sanitized()
	}
	return sanitized, nil
}

// Create registers a new account. Email must be unique; the role must
// be one of the known variants.
func (s *UserService) Create(actor models.User, req dto.CreateUserRequest) (models.User, error) {
	if !req.Role.Valid() {
		return models.User{}, utils.E(utils.KindInvalidArgument, "Invalid role")
	}

	taken, err := s.users.EmailTaken(req.Email, "")
	if err != nil {
		return models.User{}, utils.Wrap(utils.KindInternal, "Failed to create user", err)
	}
	if taken {
		return models.User{}, utils.E(utils.KindConflict, "Email already registered")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return models.User{}, utils.Wrap(utils.KindInternal, "Failed to create user", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		Role:         req.Role,
		Active:       true,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(user); err != nil {
		return models.User{}, utils.Wrap(utils.KindInternal, "Failed to create user", err)
	}

	s.audit.Record(actor.ID, actor.Name, models.ActionCreate, "user", user.ID,
		fmt.Sprintf("User created: %s", user.Email))
	return user.Sanitized(), nil
}

// Update patches the enumerated fields onto an existing user. A new
// password is re-hashed; an email change must stay unique.
func (s *UserService) Update(actor models.User, id string, req dto.UpdateUserRequest) (models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, utils.E(utils.KindNotFound, "User not found")
		}
		return models.User{}, utils.Wrap(utils.KindInternal, "Failed to load user", err)
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.users.EmailTaken(*req.Email, id)
		if err != nil {
			return models.User{}, utils.Wrap(utils.KindInternal, "Failed to update user", err)
		}
		if taken {
			return models.User{}, utils.E(utils.KindConflict, "Email already registered")
		}
		user.Email = *req.Email
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return models.User{}, utils.E(utils.KindInvalidArgument, "Invalid role")
		}
		user.Role = *req.Role
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if req.Password != nil {
		hash, err := HashPassword(*req.Password)
		if err != nil {
			return models.User{}, utils.Wrap(utils.KindInternal, "Failed to update user", err)
		}
		user.PasswordHash = hash
	}

	if err := s.users.Save(user); err != nil {
		return models.User{}, utils.Wrap(utils.KindInternal, "Failed to update user", err)
	}

	s.audit.Record(actor.ID, actor.Name, models.ActionUpdate, "user", user.ID, "User updated")
	return user.Sanitized(), nil
}
