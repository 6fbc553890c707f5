package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/leadflow-simple/services"
	"github.com/leadflow-simple/utils"
)

// AuditController handles the audit trail listing endpoint
type AuditController struct {
	auditService *services.AuditService
}

// NewAuditController creates a new audit controller
func NewAuditController(auditService *services.AuditService) *AuditController {
	return &AuditController{auditService: auditService}
}

// List retrieves the most recent audit entries, newest first
func (ctl *AuditController) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 {
		limit = 100
	}

	entries, err := ctl.auditService.List(limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   entries,
	})
}
