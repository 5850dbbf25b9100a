package domain

import "time"

// User is the domain model for registered authors.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
