package models

// LeadStatus represents a pipeline stage a lead can be in.
// Color is a display hint for the frontend.
type LeadStatus struct {
	ID    string `json:"id" gorm:"primaryKey;type:uuid"`
	Name  string `json:"name" gorm:"not null"`
	Color string `json:"color" gorm:"not null"`
}

// TableName keeps the collection name aligned with the API path
func (LeadStatus) TableName() string {
	return "lead_statuses"
}
