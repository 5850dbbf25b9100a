package domain

import "time"

// Visibility enumerates release lifecycle states.
type Visibility string

const (
	VisibilityDraft     Visibility = "draft"
	VisibilityPublished Visibility = "published"
)

// Maximum lengths enforced on release fields.
const (
	TitleMaxLen   = 200
	VersionMaxLen = 50
)

// Release is a versioned changelog entry owned by a single user.
//
// Slug and PublishedAt are set on first publish and never cleared
// afterwards; unpublishing only flips Visibility back to draft. A
// release is published exactly when PublishedAt is non-nil and
// Visibility is published.
type Release struct {
	ID          string
	UserID      string
	Title       string
	Version     string
	ContentMD   string
	Visibility  Visibility
	Slug        *string
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
