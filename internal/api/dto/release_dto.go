package dto

import (
	"time"

	"github.com/spec-kit/release-notes-service/internal/domain"
)

// CreateReleaseRequest payload.
type CreateReleaseRequest struct {
	Title     string `json:"title"`
	Version   string `json:"version"`
	ContentMD string `json:"content_md"`
}

// UpdateReleaseRequest carries partial updates; absent fields stay nil
// and are not applied.
type UpdateReleaseRequest struct {
	Title     *string `json:"title"`
	Version   *string `json:"version"`
	ContentMD *string `json:"content_md"`
}

// ReleaseResponse is the owner's view of a release.
type ReleaseResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Version     string            `json:"version"`
	Slug        *string           `json:"slug"`
	ContentMD   string            `json:"content_md"`
	Visibility  domain.Visibility `json:"visibility"`
	PublishedAt *time.Time        `json:"published_at"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	UserID      string            `json:"user_id"`
}

// PublicReleaseResponse is the unauthenticated view; ownership and
// lifecycle fields are omitted.
type PublicReleaseResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Version     string     `json:"version"`
	Slug        *string    `json:"slug"`
	ContentMD   string     `json:"content_md"`
	PublishedAt *time.Time `json:"published_at"`
}

// NewReleaseResponse maps a domain release.
func NewReleaseResponse(release *domain.Release) ReleaseResponse {
	return ReleaseResponse{
		ID:          release.ID,
		Title:       release.Title,
		Version:     release.Version,
		Slug:        release.Slug,
		ContentMD:   release.ContentMD,
		Visibility:  release.Visibility,
		PublishedAt: release.PublishedAt,
		CreatedAt:   release.CreatedAt,
		UpdatedAt:   release.UpdatedAt,
		UserID:      release.UserID,
	}
}

// NewReleaseResponses maps a slice of releases.
func NewReleaseResponses(releases []domain.Release) []ReleaseResponse {
	result := make([]ReleaseResponse, 0, len(releases))
	for i := range releases {
		result = append(result, NewReleaseResponse(&releases[i]))
	}
	return result
}

// NewPublicReleaseResponse maps a release for the public surface.
func NewPublicReleaseResponse(release *domain.Release) PublicReleaseResponse {
	return PublicReleaseResponse{
		ID:          release.ID,
		Title:       release.Title,
		Version:     release.Version,
		Slug:        release.Slug,
		ContentMD:   release.ContentMD,
		PublishedAt: release.PublishedAt,
	}
}

// NewPublicReleaseResponses maps a slice of releases for the public surface.
func NewPublicReleaseResponses(releases []domain.Release) []PublicReleaseResponse {
	result := make([]PublicReleaseResponse, 0, len(releases))
	for i := range releases {
		result = append(result, NewPublicReleaseResponse(&releases[i]))
	}
	return result
}
