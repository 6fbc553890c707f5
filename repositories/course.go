package repositories

import (
	"github.com/leadflow-simple/models"
	"gorm.io/gorm"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository instance
func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// FindActive retrieves active courses, capped at limit
func (r *CourseRepository) FindActive(limit int) ([]models.Course, error) {
	var courses []models.Course
	result := r.db.Where("active = ?", true).Limit(limit).Find(&courses)
	return courses, result.Error
}

// FindAll retrieves all courses, capped at limit
func (r *CourseRepository) FindAll(limit int) ([]models.Course, error) {
	var courses []models.Course
	result := r.db.Limit(limit).Find(&courses)
	return courses, result.Error
}

// Create inserts a new course into the database
func (r *CourseRepository) Create(course models.Course) error {
	return r.db.Create(&course).Error
}

// Count returns the number of courses
func (r *CourseRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&models.Course{}).Count(&count)
	return count, result.Error
}
