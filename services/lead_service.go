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

// Result caps are deliberate soft ceilings, not a paging contract
const (
	maxOwnLeads      = 1000
	maxFilteredLeads = 5000
)

// LeadStore is the subset of the lead repository the service needs
type LeadStore interface {
	Create(lead models.Lead) error
	FindByID(id string) (models.Lead, error)
	FindByOwner(ownerID string, limit int) ([]models.Lead, error)
	FindFiltered(filter dto.LeadFilter, limit int) ([]models.Lead, error)
	Save(lead models.Lead) error
}

// StatusCatalog validates status names against the stored definitions
type StatusCatalog interface {
	NameExists(name string) (bool, error)
}

// LeadService handles business logic for leads
type LeadService struct {
	leads    LeadStore
	statuses StatusCatalog
	audit    AuditRecorder
}

// NewLeadService creates a new lead service instance
func NewLeadService(leads LeadStore, statuses StatusCatalog, audit AuditRecorder) *LeadService {
	return &LeadService{leads: leads, statuses: statuses, audit: audit}
}

// Create stores a new lead for the authenticated seller. Owner identity
// comes from the caller's session, never from the request body, and the
// status always starts at the default.
func (s *LeadService) Create(seller models.User, req dto.CreateLeadRequest) (models.Lead, error) {
	now := time.Now().UTC()
	lead := models.Lead{
		ID:        uuid.NewString(),
		FullName:  req.FullName,
		Phone:     req.Phone,
		Course:    req.Course,
		Status:    models.DefaultLeadStatus,
		OwnerID:   seller.ID,
		OwnerName: seller.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.leads.Create(lead); err != nil {
		return models.Lead{}, utils.Wrap(utils.KindInternal, "Failed to create lead", err)
	}

	s.audit.Record(seller.ID, seller.Name, models.ActionCreate, "lead", lead.ID,
		fmt.Sprintf("Lead created: %s", lead.FullName))
	return lead, nil
}

// ListOwn retrieves the seller's own leads
func (s *LeadService) ListOwn(seller models.User) ([]models.Lead, error) {
	leads, err := s.leads.FindByOwner(seller.ID, maxOwnLeads)
	if err != nil {
		return nil, utils.Wrap(utils.KindInternal, "Failed to list leads", err)
	}
	return leads, nil
}

// ListAll retrieves leads across all sellers, with optional equality
// filters ANDed together
func (s *LeadService) ListAll(filter dto.LeadFilter) ([]models.Lead, error) {
	leads, err := s.leads.FindFiltered(filter, maxFilteredLeads)
	if err != nil {
		return nil, utils.Wrap(utils.KindInternal, "Failed to list leads", err)
	}
	return leads, nil
}

// Update merges the non-nil fields of the request into the stored lead.
// Owner fields are immutable; updated_at is always refreshed. A status
// not present in the status catalog is rejected.
func (s *LeadService) Update(actor models.User, id string, req dto.UpdateLeadRequest) (models.Lead, error) {
	lead, err := s.leads.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Lead{}, utils.E(utils.KindNotFound, "Lead not found")
		}
		return models.Lead{}, utils.Wrap(utils.KindInternal, "Failed to load lead", err)
	}

	if req.Status != nil {
		known, err := s.statuses.NameExists(*req.Status)
		if err != nil {
			return models.Lead{}, utils.Wrap(utils.KindInternal, "Failed to validate status", err)
		}
		if !known {
			return models.Lead{}, utils.E(utils.KindInvalidArgument, "Unknown lead status")
		}
		lead.Status = *req.Status
	}
	if req.FullName != nil {
		lead.FullName = *req.FullName
	}
	if req.Phone != nil {
		lead.Phone = *req.Phone
	}
	if req.Course != nil {
		lead.Course = *req.Course
	}
	lead.UpdatedAt = time.Now().UTC()

	if err := s.leads.Save(lead); err != nil {
		return models.Lead{}, utils.Wrap(utils.KindInternal, "Failed to update lead", err)
	}

	s.audit.Record(actor.ID, actor.Name, models.ActionUpdate, "lead", lead.ID, "Lead updated")
	return lead, nil
}
