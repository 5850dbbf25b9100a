package dto

import (
	"time"

	"github.com/spec-kit/release-notes-service/internal/domain"
)

// ViewEventRequest payload for view tracking.
type ViewEventRequest struct {
	SessionID string `json:"session_id"`
}

// ContactMessageRequest is a contact form submission.
type ContactMessageRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company *string `json:"company"`
	Message string  `json:"message"`
}

// ContactMessageResponse is the inbox view of a submission.
type ContactMessageResponse struct {
	ID          string                      `json:"id"`
	Name        string                      `json:"name"`
	Email       string                      `json:"email"`
	Company     *string                     `json:"company"`
	Message     string                      `json:"message"`
	Status      domain.ContactMessageStatus `json:"status"`
	SubmittedAt time.Time                   `json:"submitted_at"`
}

// NewContactMessageResponse maps a domain contact message.
func NewContactMessageResponse(msg *domain.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:          msg.ID,
		Name:        msg.Name,
		Email:       msg.Email,
		Company:     msg.Company,
		Message:     msg.Message,
		Status:      msg.Status,
		SubmittedAt: msg.SubmittedAt,
	}
}

// NewContactMessageResponses maps a slice of contact messages.
func NewContactMessageResponses(msgs []domain.ContactMessage) []ContactMessageResponse {
	result := make([]ContactMessageResponse, 0, len(msgs))
	for i := range msgs {
		result = append(result, NewContactMessageResponse(&msgs[i]))
	}
	return result
}
