package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leadflow-simple/dto"
	"github.com/leadflow-simple/middleware"
	"github.com/leadflow-simple/services"
	"github.com/leadflow-simple/utils"
)

// LeadController handles lead endpoints
type LeadController struct {
	leadService *services.LeadService
}

// NewLeadController creates a new lead controller
func NewLeadController(leadService *services.LeadService) *LeadController {
	return &LeadController{leadService: leadService}
}

// Create stores a new lead owned by the authenticated seller
func (ctl *LeadController) Create(c *gin.Context) {
	var req dto.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBadRequest(c, "Invalid request body")
		return
	}

	seller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Authentication required"})
		return
	}

	lead, err := ctl.leadService.Create(seller, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   lead,
	})
}

// ListOwn retrieves the authenticated seller's leads
func (ctl *LeadController) ListOwn(c *gin.Context) {
	seller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Authentication required"})
		return
	}

	leads, err := ctl.leadService.ListOwn(seller)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   leads,
	})
}

// ListAll retrieves leads across all sellers with optional filters
func (ctl *LeadController) ListAll(c *gin.Context) {
	filter := dto.LeadFilter{
		Course:  c.Query("course"),
		Status:  c.Query("status"),
		OwnerID: c.Query("owner_id"),
	}

	leads, err := ctl.leadService.ListAll(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   leads,
	})
}

// Update patches a lead's mutable fields
func (ctl *LeadController) Update(c *gin.Context) {
	var req dto.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBadRequest(c, "Invalid request body")
		return
	}

	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Authentication required"})
		return
	}

	lead, err := ctl.leadService.Update(actor, c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   lead,
	})
}
