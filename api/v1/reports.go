package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leadflow-simple/dto"
	"github.com/leadflow-simple/middleware"
	"github.com/leadflow-simple/services"
	"github.com/leadflow-simple/utils"
)

// ReportController handles dashboard, stats, export and backup endpoints
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new report controller
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// OwnStats returns the authenticated seller's portfolio statistics
func (ctl *ReportController) OwnStats(c *gin.Context) {
	seller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Authentication required"})
		return
	}

	stats, err := ctl.reportService.OwnStats(seller)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   stats,
	})
}

// Dashboard returns the cross-seller aggregations
func (ctl *ReportController) Dashboard(c *gin.Context) {
	dashboard, err := ctl.reportService.Dashboard()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   dashboard,
	})
}

// Export streams the filtered leads as a CSV or Excel download
func (ctl *ReportController) Export(c *gin.Context) {
	filter := dto.LeadFilter{
		Course:  c.Query("course"),
		Status:  c.Query("status"),
		OwnerID: c.Query("owner_id"),
	}

	file, err := ctl.reportService.Export(c.Param("format"), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+file.Filename)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// Backup streams the full system dump as an Excel download
func (ctl *ReportController) Backup(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Authentication required"})
		return
	}

	file, err := ctl.reportService.Backup(actor)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+file.Filename)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
