package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/leadflow-simple/middleware"
	"github.com/leadflow-simple/policy"
	"github.com/leadflow-simple/services"
)

// Dependencies bundles the services the API layer is wired with
type Dependencies struct {
	Auth     *services.AuthService
	Users    *services.UserService
	Leads    *services.LeadService
	Courses  *services.CourseService
	Statuses *services.LeadStatusService
	Reports  *services.ReportService
	Audit    *services.AuditService
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, deps Dependencies) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	authn := middleware.AuthMiddleware(deps.Auth)

	// Auth endpoints
	authController := NewAuthController(deps.Auth)
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", authController.Login)
		authGroup.GET("/me", authn, middleware.Require(policy.OpOwnProfile), authController.Me)
	}

	// Lead endpoints
	leadController := NewLeadController(deps.Leads)
	reportController := NewReportController(deps.Reports)
	leadGroup := router.Group("/leads")
	leadGroup.Use(authn)
	{
		leadGroup.POST("", middleware.Require(policy.OpCreateLead), leadController.Create)
		leadGroup.GET("/my", middleware.Require(policy.OpListOwnLeads), leadController.ListOwn)
		leadGroup.GET("/stats", middleware.Require(policy.OpOwnStats), reportController.OwnStats)
		leadGroup.GET("", middleware.Require(policy.OpListAllLeads), leadController.ListAll)
		leadGroup.PATCH("/:id", middleware.Require(policy.OpUpdateLead), leadController.Update)
	}

	// Reporting endpoints
	router.GET("/dashboard", authn, middleware.Require(policy.OpDashboard), reportController.Dashboard)
	router.GET("/reports/export/:format", authn, middleware.Require(policy.OpExportLeads), reportController.Export)
	router.GET("/system/backup", authn, middleware.Require(policy.OpBackup), reportController.Backup)

	// User management endpoints (administrator only)
	userController := NewUserController(deps.Users)
	userGroup := router.Group("/users")
	userGroup.Use(authn)
	{
		userGroup.GET("", middleware.Require(policy.OpListUsers), userController.List)
		userGroup.POST("", middleware.Require(policy.OpCreateUser), userController.Create)
		userGroup.PATCH("/:id", middleware.Require(policy.OpUpdateUser), userController.Update)
	}

	// Catalog endpoints: listings are public, writes are administrator only
	catalogController := NewCatalogController(deps.Courses, deps.Statuses)
	router.GET("/courses", catalogController.ListCourses)
	router.POST("/courses", authn, middleware.Require(policy.OpCreateCourse), catalogController.CreateCourse)
	router.GET("/lead-status", catalogController.ListLeadStatuses)
	router.POST("/lead-status", authn, middleware.Require(policy.OpCreateLeadStatus), catalogController.CreateLeadStatus)

	// Audit trail endpoint (administrator only)
	auditController := NewAuditController(deps.Audit)
	router.GET("/audit-logs", authn, middleware.Require(policy.OpListAuditLogs), auditController.List)
}
