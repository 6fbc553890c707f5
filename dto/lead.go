package dto

// CreateLeadRequest carries the fields a seller supplies for a new lead.
// Owner and status are stamped by the server, never taken from input.
type CreateLeadRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Course   string `json:"course" binding:"required"`
}

// UpdateLeadRequest is a partial update: only non-nil fields are merged.
// Owner fields are deliberately absent; they are immutable.
type UpdateLeadRequest struct {
	Status   *string `json:"status"`
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Course   *string `json:"course"`
}

// LeadFilter holds the equality filters for cross-seller lead queries.
// Empty fields impose no constraint.
type LeadFilter struct {
	Course  string
	Status  string
	OwnerID string
}
