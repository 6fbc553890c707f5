package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/leadflow-simple/dto"
	"github.com/leadflow-simple/models"
	"github.com/leadflow-simple/utils"
)

const maxCatalogListing = 100

// CourseStore is the subset of the course repository the service needs
type CourseStore interface {
	FindActive(limit int) ([]models.Course, error)
	Create(course models.Course) error
}

// LeadStatusStore is the subset of the status repository the service needs
type LeadStatusStore interface {
	FindAll(limit int) ([]models.LeadStatus, error)
	Create(status models.LeadStatus) error
}

// CourseService manages the public course catalog
type CourseService struct {
	courses CourseStore
	audit   AuditRecorder
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore, audit AuditRecorder) *CourseService {
	return &CourseService{courses: courses, audit: audit}
}

// ListActive retrieves the active courses. This listing is public.
func (s *CourseService) ListActive() ([]models.Course, error) {
	courses, err := s.courses.FindActive(maxCatalogListing)
	if err != nil {
		return nil, utils.Wrap(utils.KindInternal, "Failed to list courses", err)
	}
	return courses, nil
}

// Create adds a course to the catalog
func (s *CourseService) Create(actor models.User, req dto.CreateCourseRequest) (models.Course, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	course := models.Course{
		ID:     uuid.NewString(),
		Name:   req.Name,
		Active: active,
	}
	if err := s.courses.Create(course); err != nil {
		return models.Course{}, utils.Wrap(utils.KindInternal, "Failed to create course", err)
	}

	s.audit.Record(actor.ID, actor.Name, models.ActionCreate, "course", course.ID,
		fmt.Sprintf("Course created: %s", course.Name))
	return course, nil
}

// LeadStatusService manages the lead status definitions
type LeadStatusService struct {
	statuses LeadStatusStore
	audit    AuditRecorder
}

// NewLeadStatusService creates a new lead status service instance
func NewLeadStatusService(statuses LeadStatusStore, audit AuditRecorder) *LeadStatusService {
	return &LeadStatusService{statuses: statuses, audit: audit}
}

// List retrieves all status definitions. This listing is public.
func (s *LeadStatusService) List() ([]models.LeadStatus, error) {
	statuses, err := s.statuses.FindAll(maxCatalogListing)
	if err != nil {
		return nil, utils.Wrap(utils.KindInternal, "Failed to list lead statuses", err)
	}
	return statuses, nil
}

// Create adds a status definition
func (s *LeadStatusService) Create(actor models.User, req dto.CreateLeadStatusRequest) (models.LeadStatus, error) {
	status := models.LeadStatus{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Color: req.Color,
	}
	if err := s.statuses.Create(status); err != nil {
		return models.LeadStatus{}, utils.Wrap(utils.KindInternal, "Failed to create lead status", err)
	}

	s.audit.Record(actor.ID, actor.Name, models.ActionCreate, "lead_status", status.ID,
		fmt.Sprintf("Status created: %s", status.Name))
	return status, nil
}
