package models

// Course represents a course offered to prospective students
type Course struct {
	ID     string `json:"id" gorm:"primaryKey;type:uuid"`
	Name   string `json:"name" gorm:"not null"`
	Active bool   `json:"active" gorm:"not null;default:true"`
}
