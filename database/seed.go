package database

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/leadflow-simple/models"
	"github.com/leadflow-simple/services"
	"gorm.io/gorm"
)

// Seed creates the bootstrap data. Each collection is seeded only when
// it is empty, so repeated startups never overwrite existing records.
func Seed(db *gorm.DB) error {
	if err := seedUsers(db); err != nil {
		return err
	}
	if err := seedCourses(db); err != nil {
		return err
	}
	if err := seedStatuses(db); err != nil {
		return err
	}
	return seedLeads(db)
}

func seedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demo := []struct {
		email    string
		name     string
		role     models.Role
		password string
	}{
		{"seller@lead.com", "Demo Seller", models.RoleSeller, "seller123"},
		{"coordinator@lead.com", "Demo Coordinator", models.RoleCoordinator, "coordinator123"},
		{"admin@lead.com", "Admin Demo", models.RoleAdministrator, "admin123"},
	}

	users := make([]models.User, len(demo))
	for i, d := range demo {
		hash, err := services.HashPassword(d.password)
		if err != nil {
			return fmt.Errorf("failed to hash demo password: %v", err)
		}
		users[i] = models.User{
			ID:           uuid.NewString(),
			Email:        d.email,
			Name:         d.name,
			Role:         d.role,
			Active:       true,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		}
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}
	log.Println("Demo users created")
	return nil
}

func seedCourses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	names := []string{
		"Nursing",
		"Pharmacy",
		"Veterinary Medicine",
		"Dentistry",
		"Psychology",
		"Business Administration – On Campus",
		"Business Administration – Blended",
		"History Teaching",
		"English Language Teaching",
		"Portuguese Language Teaching",
		"Mathematics Teaching",
		"Pedagogy",
		"Computer Science",
		"Computer Engineering",
		"Electrical Engineering",
		"Mechanical Engineering",
		"Information Systems",
		"Law",
	}

	courses := make([]models.Course, len(names))
	for i, name := range names {
		courses[i] = models.Course{ID: uuid.NewString(), Name: name, Active: true}
	}
	if err := db.Create(&courses).Error; err != nil {
		return err
	}
	log.Println("Course catalog created")
	return nil
}

func seedStatuses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.LeadStatus{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	statuses := []models.LeadStatus{
		{ID: uuid.NewString(), Name: "New", Color: "#3B82F6"},
		{ID: uuid.NewString(), Name: "In negotiation", Color: "#F97316"},
		{ID: uuid.NewString(), Name: "Enrolled", Color: "#10B981"},
		{ID: uuid.NewString(), Name: "Not interested", Color: "#EF4444"},
	}
	if err := db.Create(&statuses).Error; err != nil {
		return err
	}
	log.Println("Lead statuses created")
	return nil
}

func seedLeads(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Lead{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// Sample leads need an owner; skip silently when no seller exists
	var seller models.User
	if err := db.First(&seller, "role = ?", models.RoleSeller).Error; err != nil {
		return nil
	}

	samples := []struct {
		name    string
		phone   string
		course  string
		status  string
		daysAgo int
		updated int
	}{
		{"Maria Silva Santos", "(84) 98765-4321", "Nursing", "New", 5, 5},
		{"João Pedro Costa", "(84) 99876-5432", "Computer Engineering", "In negotiation", 10, 2},
		{"Ana Carolina Oliveira", "(84) 98123-4567", "Business Administration – On Campus", "Enrolled", 20, 1},
		{"Carlos Eduardo Ferreira", "(84) 99234-5678", "Law", "In negotiation", 3, 3},
		{"Beatriz Almeida Lima", "(84) 98345-6789", "Psychology", "New", 7, 7},
		{"Lucas Henrique Souza", "(84) 99456-7890", "Electrical Engineering", "Enrolled", 15, 8},
		{"Fernanda Rodrigues Martins", "(84) 98567-8901", "Pharmacy", "In negotiation", 12, 4},
		{"Rafael Gomes Pereira", "(84) 99678-9012", "Computer Science", "New", 1, 1},
		{"Juliana Mendes Rocha", "(84) 98789-0123", "Pedagogy", "Enrolled", 25, 18},
		{"Gabriel Santos Barbosa", "(84) 99890-1234", "Dentistry", "Not interested", 30, 28},
		{"Camila Freitas Castro", "(84) 98901-2345", "Veterinary Medicine", "In negotiation", 8, 6},
		{"Thiago Ribeiro Lopes", "(84) 99012-3456", "Mathematics Teaching", "New", 0, 0},
	}

	now := time.Now().UTC()
	leads := make([]models.Lead, len(samples))
	for i, s := range samples {
		leads[i] = models.Lead{
			ID:        uuid.NewString(),
			FullName:  s.name,
			Phone:     s.phone,
			Course:    s.course,
			Status:    s.status,
			OwnerID:   seller.ID,
			OwnerName: seller.Name,
			CreatedAt: now.AddDate(0, 0, -s.daysAgo),
			UpdatedAt: now.AddDate(0, 0, -s.updated),
		}
	}
	if err := db.Create(&leads).Error; err != nil {
		return err
	}
	log.Println("Sample leads created")
	return nil
}
