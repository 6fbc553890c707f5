package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/leadflow-simple/api/v1"
	"github.com/leadflow-simple/config"
	"github.com/leadflow-simple/database"
	"github.com/leadflow-simple/repositories"
	"github.com/leadflow-simple/services"
)

func main() {
	// Load configuration
	config.LoadEnv()
	cfg := config.Load()

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Seed bootstrap data on an empty database
	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	courseRepo := repositories.NewCourseRepository(db)
	statusRepo := repositories.NewLeadStatusRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)

	// Services
	auditService := services.NewAuditService(auditRepo)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	userService := services.NewUserService(userRepo, auditService)
	leadService := services.NewLeadService(leadRepo, statusRepo, auditService)
	courseService := services.NewCourseService(courseRepo, auditService)
	statusService := services.NewLeadStatusService(statusRepo, auditService)
	reportService := services.NewReportService(leadRepo, userRepo, courseRepo, statusRepo, auditService, cfg.OrgName)

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	router.Use(cors.New(corsConfig))

	// Register API routes
	api := router.Group("/api")
	v1.RegisterRoutes(api, v1.Dependencies{
		Auth:     authService,
		Users:    userService,
		Leads:    leadService,
		Courses:  courseService,
		Statuses: statusService,
		Reports:  reportService,
		Audit:    auditService,
	})

	// Start server
	log.Printf("leadflow API starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
