package dto

import (
	"time"

	"github.com/spec-kit/release-notes-service/internal/domain"
)

// CreateApplicationRequest payload.
type CreateApplicationRequest struct {
	Company  string                   `json:"company"`
	Role     string                   `json:"role"`
	JobType  string                   `json:"job_type"`
	Status   domain.ApplicationStatus `json:"status"`
	DateSent string                   `json:"date_sent"`
	Notes    string                   `json:"notes"`
}

// UpdateApplicationRequest carries partial updates.
type UpdateApplicationRequest struct {
	Company  *string                   `json:"company"`
	Role     *string                   `json:"role"`
	JobType  *string                   `json:"job_type"`
	Status   *domain.ApplicationStatus `json:"status"`
	DateSent *string                   `json:"date_sent"`
	Notes    *string                   `json:"notes"`
}

// ApplicationResponse is an admin view of an application.
type ApplicationResponse struct {
	ID        string                   `json:"id"`
	Company   string                   `json:"company"`
	Role      string                   `json:"role"`
	JobType   string                   `json:"job_type"`
	Status    domain.ApplicationStatus `json:"status"`
	DateSent  string                   `json:"date_sent"`
	Notes     string                   `json:"notes"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

// CreateContactRequest payload.
type CreateContactRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Notes   string `json:"notes"`
}

// UpdateContactRequest carries partial updates.
type UpdateContactRequest struct {
	Name    *string `json:"name"`
	Company *string `json:"company"`
	Email   *string `json:"email"`
	Notes   *string `json:"notes"`
}

// ContactResponse is a recruiter contact record.
type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	Email     string    `json:"email"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertBannerRequest carries partial banner updates.
type UpsertBannerRequest struct {
	Message  *string `json:"message"`
	IsActive *bool   `json:"is_active"`
}

// BannerResponse is the status banner.
type BannerResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	IsActive  bool      `json:"is_active"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewApplicationResponse maps a domain application.
func NewApplicationResponse(app *domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        app.ID,
		Company:   app.Company,
		Role:      app.Role,
		JobType:   app.JobType,
		Status:    app.Status,
		DateSent:  app.DateSent,
		Notes:     app.Notes,
		CreatedAt: app.CreatedAt,
		UpdatedAt: app.UpdatedAt,
	}
}

// NewApplicationResponses maps a slice of applications.
func NewApplicationResponses(apps []domain.Application) []ApplicationResponse {
	result := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		result = append(result, NewApplicationResponse(&apps[i]))
	}
	return result
}

// NewContactResponse maps a domain recruiter contact.
func NewContactResponse(contact *domain.RecruiterContact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		Name:      contact.Name,
		Company:   contact.Company,
		Email:     contact.Email,
		Notes:     contact.Notes,
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}
}

// NewContactResponses maps a slice of recruiter contacts.
func NewContactResponses(contacts []domain.RecruiterContact) []ContactResponse {
	result := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		result = append(result, NewContactResponse(&contacts[i]))
	}
	return result
}

// NewBannerResponse maps the status banner.
func NewBannerResponse(banner *domain.StatusBanner) BannerResponse {
	return BannerResponse{
		ID:        banner.ID,
		Message:   banner.Message,
		IsActive:  banner.IsActive,
		UpdatedAt: banner.UpdatedAt,
	}
}
