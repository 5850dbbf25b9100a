package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventReleasePublished EventType = "release_published"
	EventContactSubmitted EventType = "contact_submitted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ReleasePublishedPayload payload.
type ReleasePublishedPayload struct {
	ReleaseID string `json:"release_id"`
	OwnerID   string `json:"owner_id"`
	Title     string `json:"title"`
	Version   string `json:"version"`
	Slug      string `json:"slug"`
}

// ContactSubmittedPayload payload.
type ContactSubmittedPayload struct {
	MessageID   string    `json:"message_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Company     *string   `json:"company,omitempty"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}
