package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/release-notes-service/internal/domain"
	"github.com/spec-kit/release-notes-service/internal/events"
	"github.com/spec-kit/release-notes-service/internal/repository"
	apperrors "github.com/spec-kit/release-notes-service/pkg/util"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// ReleaseService coordinates ownership-scoped release workflows and the
// public read surface.
type ReleaseService struct {
	releases   repository.ReleaseRepository
	dispatcher events.Dispatcher
}

// NewReleaseService constructs the service.
func NewReleaseService(releases repository.ReleaseRepository, dispatcher events.Dispatcher) *ReleaseService {
	return &ReleaseService{releases: releases, dispatcher: dispatcher}
}

// ReleaseCreateInput describes release creation payload.
type ReleaseCreateInput struct {
	Title     string
	Version   string
	ContentMD string
}

// ReleaseUpdateInput carries the fields explicitly supplied in a partial
// update; nil fields are left untouched. Visibility changes only through
// Publish and Unpublish so the publish-timestamp invariant cannot be
// bypassed.
type ReleaseUpdateInput struct {
	Title     *string
	Version   *string
	ContentMD *string
}

// ReleaseListFilter describes owner listing parameters.
type ReleaseListFilter struct {
	Visibility *domain.Visibility
	Limit      int
	Offset     int
}

// Create validates the payload and stores a new draft. Drafts carry no
// slug; the slug is assigned at first publish.
func (s *ReleaseService) Create(ctx context.Context, ownerID string, input ReleaseCreateInput) (*domain.Release, error) {
	if err := validateTitle(input.Title); err != nil {
		return nil, err
	}
	if err := validateVersion(input.Version); err != nil {
		return nil, err
	}

	release := &domain.Release{
		UserID:     ownerID,
		Title:      input.Title,
		Version:    input.Version,
		ContentMD:  input.ContentMD,
		Visibility: domain.VisibilityDraft,
	}
	if err := s.releases.Create(ctx, release); err != nil {
		return nil, apperrors.MapError(err)
	}
	return release, nil
}

// List returns the owner's releases, newest created first.
func (s *ReleaseService) List(ctx context.Context, ownerID string, filter ReleaseListFilter) ([]domain.Release, error) {
	repoFilter := repository.ReleaseFilter{
		OwnerID:    &ownerID,
		Visibility: filter.Visibility,
		Limit:      clampLimit(filter.Limit),
		Offset:     filter.Offset,
	}
	result, err := s.releases.ListWithFilter(ctx, repoFilter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// Get fetches a release enforcing ownership. A missing id is NotFound;
// an id owned by someone else is Forbidden. The two stay distinct so
// the routing layer can keep the 404/403 split.
func (s *ReleaseService) Get(ctx context.Context, ownerID, id string) (*domain.Release, error) {
	return s.getOwned(ctx, ownerID, id)
}

// Update applies the supplied fields, bumps the update timestamp, and
// regenerates the slug when title or version changed while a slug exists.
func (s *ReleaseService) Update(ctx context.Context, ownerID, id string, input ReleaseUpdateInput) (*domain.Release, error) {
	release, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if err := validateTitle(*input.Title); err != nil {
			return nil, err
		}
		release.Title = *input.Title
	}
	if input.Version != nil {
		if err := validateVersion(*input.Version); err != nil {
			return nil, err
		}
		release.Version = *input.Version
	}
	if input.ContentMD != nil {
		release.ContentMD = *input.ContentMD
	}

	if (input.Title != nil || input.Version != nil) && release.Slug != nil {
		slug := GenerateSlug(release.Title, release.Version)
		release.Slug = &slug
	}
	release.UpdatedAt = time.Now().UTC()

	if err := s.releases.Update(ctx, release); err != nil {
		return nil, apperrors.MapError(err)
	}
	return release, nil
}

// Delete removes a release permanently.
func (s *ReleaseService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.getOwned(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.releases.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// Publish makes a release publicly readable. The publish timestamp is
// re-stamped on every call, including repeat publishes of an already
// published release. The slug is assigned only if absent, so it sticks
// across unpublish/republish cycles.
func (s *ReleaseService) Publish(ctx context.Context, ownerID, id string) (*domain.Release, error) {
	release, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	release.Visibility = domain.VisibilityPublished
	release.PublishedAt = &now
	release.UpdatedAt = now
	if release.Slug == nil {
		slug := GenerateSlug(release.Title, release.Version)
		release.Slug = &slug
	}

	if err := s.releases.Update(ctx, release); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type: events.EventReleasePublished,
		Payload: events.ReleasePublishedPayload{
			ReleaseID: release.ID,
			OwnerID:   release.UserID,
			Title:     release.Title,
			Version:   release.Version,
			Slug:      *release.Slug,
		},
	})
	return release, nil
}

// Unpublish reverts a release to draft. Slug and publish timestamp are
// retained as publication history markers.
func (s *ReleaseService) Unpublish(ctx context.Context, ownerID, id string) (*domain.Release, error) {
	release, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	release.Visibility = domain.VisibilityDraft
	release.UpdatedAt = time.Now().UTC()

	if err := s.releases.Update(ctx, release); err != nil {
		return nil, apperrors.MapError(err)
	}
	return release, nil
}

// PublicList returns published releases, newest published first. No
// identity required.
func (s *ReleaseService) PublicList(ctx context.Context, limit, offset int) ([]domain.Release, error) {
	result, err := s.releases.ListPublished(ctx, clampLimit(limit), offset)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// PublicGet resolves a published release by slug.
func (s *ReleaseService) PublicGet(ctx context.Context, slug string) (*domain.Release, error) {
	release, err := s.releases.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("release", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return release, nil
}

func (s *ReleaseService) getOwned(ctx context.Context, ownerID, id string) (*domain.Release, error) {
	release, err := s.releases.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("release", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if release.UserID != ownerID {
		return nil, apperrors.NewForbidden("not authorized to access this release")
	}
	return release, nil
}

func (s *ReleaseService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	_ = s.dispatcher.Publish(ctx, event)
}

func validateTitle(title string) error {
	if title == "" || len(title) > domain.TitleMaxLen {
		return apperrors.NewValidationError("title must be 1-200 characters", map[string]any{"field": "title"})
	}
	return nil
}

func validateVersion(version string) error {
	if version == "" || len(version) > domain.VersionMaxLen {
		return apperrors.NewValidationError("version must be 1-50 characters", map[string]any{"field": "version"})
	}
	return nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}
