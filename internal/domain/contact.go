package domain

import "time"

// ContactMessageStatus marks inbox state for a submission.
type ContactMessageStatus string

const (
	ContactMessageReceived ContactMessageStatus = "received"
	ContactMessageRead     ContactMessageStatus = "read"
)

// ContactMessage is a portfolio contact form submission.
type ContactMessage struct {
	ID          string
	Name        string
	Email       string
	Company     *string
	Message     string
	Status      ContactMessageStatus
	SubmittedAt time.Time
}
