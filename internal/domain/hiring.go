package domain

import "time"

// ApplicationStatus enumerates hiring pipeline states.
type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "applied"
	ApplicationStatusResponse  ApplicationStatus = "response"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusOffer     ApplicationStatus = "offer"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

// Application tracks a single outbound job application.
// DateSent is an ISO date string (YYYY-MM-DD) as supplied by the admin.
type Application struct {
	ID        string
	Company   string
	Role      string
	JobType   string
	Status    ApplicationStatus
	DateSent  string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecruiterContact is a flat admin-managed record of a recruiter interaction.
type RecruiterContact struct {
	ID        string
	Name      string
	Company   string
	Email     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StatusBanner is the single publicly visible availability banner.
type StatusBanner struct {
	ID        string
	Message   string
	IsActive  bool
	UpdatedAt time.Time
}
