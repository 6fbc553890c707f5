package dto

// MonthlyCount is one calendar-month bucket of lead creations.
// Period is the UTC month in "YYYY-MM" form.
type MonthlyCount struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
}

// OwnStatsResponse summarizes a seller's own portfolio
type OwnStatsResponse struct {
	Total   int            `json:"total"`
	Monthly []MonthlyCount `json:"monthly"`
}

// StatusCount is one entry of the dashboard status distribution
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// CourseCount is one entry of the dashboard course distribution
type CourseCount struct {
	Course string `json:"course"`
	Count  int    `json:"count"`
}

// OwnerRanking is one row of the seller ranking on the dashboard
type OwnerRanking struct {
	OwnerID    string `json:"owner_id"`
	OwnerName  string `json:"owner_name"`
	TotalLeads int    `json:"total_leads"`
	Enrolled   int    `json:"enrolled"`
}

// DashboardResponse bundles all dashboard aggregations
type DashboardResponse struct {
	TotalLeads         int64          `json:"total_leads"`
	StatusDistribution []StatusCount  `json:"status_distribution"`
	CourseDistribution []CourseCount  `json:"course_distribution"`
	OwnerRanking       []OwnerRanking `json:"owner_ranking"`
	MonthlyLeads       []MonthlyCount `json:"monthly_leads"`
}

// ExportFile is a generated report ready to be sent as a download
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
