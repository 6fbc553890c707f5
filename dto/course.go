package dto

// CreateCourseRequest represents the data for a new course
type CreateCourseRequest struct {
	Name   string `json:"name" binding:"required"`
	Active *bool  `json:"active"`
}

// CreateLeadStatusRequest represents the data for a new lead status
type CreateLeadStatusRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"required"`
}
