package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/leadflow-simple/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the GORM database connection and migrates the schema.
// The returned handle is passed explicitly to every component that needs
// it; there is no package-level connection.
func Connect(dbURL string) (*gorm.DB, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	// Connect to database
	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %v", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Auto migrate models
	err = db.AutoMigrate(
		&models.User{},
		&models.Lead{},
		&models.Course{},
		&models.LeadStatus{},
		&models.AuditLog{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %v", err)
	}

	log.Println("Connected to database")
	return db, nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("failed to close database: %v", err)
	}
}
