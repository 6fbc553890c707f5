package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leadflow-simple/dto"
	"github.com/leadflow-simple/middleware"
	"github.com/leadflow-simple/services"
	"github.com/leadflow-simple/utils"
)

// CatalogController handles the public course and lead-status catalogs
type CatalogController struct {
	courseService *services.CourseService
	statusService *services.LeadStatusService
}

// NewCatalogController creates a new catalog controller
func NewCatalogController(courseService *services.CourseService, statusService *services.LeadStatusService) *CatalogController {
	return &CatalogController{
		courseService: courseService,
		statusService: statusService,
	}
}

// ListCourses retrieves the active courses (public)
func (ctl *CatalogController) ListCourses(c *gin.Context) {
	courses, err := ctl.courseService.ListActive()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   courses,
	})
}

// CreateCourse adds a course to the catalog
func (ctl *CatalogController) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBadRequest(c, "Invalid request body")
		return
	}

	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Authentication required"})
		return
	}

	course, err := ctl.courseService.Create(actor, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   course,
	})
}

// ListLeadStatuses retrieves the status definitions (public)
func (ctl *CatalogController) ListLeadStatuses(c *gin.Context) {
	statuses, err := ctl.statusService.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   statuses,
	})
}

// CreateLeadStatus adds a status definition
func (ctl *CatalogController) CreateLeadStatus(c *gin.Context) {
	var req dto.CreateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBadRequest(c, "Invalid request body")
		return
	}

	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Authentication required"})
		return
	}

	status, err := ctl.statusService.Create(actor, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   status,
	})
}
