package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/release-notes-service/internal/domain"
	"github.com/spec-kit/release-notes-service/internal/events"
	"github.com/spec-kit/release-notes-service/internal/repository"
	apperrors "github.com/spec-kit/release-notes-service/pkg/util"
)

// fakeReleaseRepo is an in-memory ReleaseRepository used by service tests.
type fakeReleaseRepo struct {
	records    map[string]*domain.Release
	nextID     int
	lastLimit  int
	lastOffset int
}

func newFakeReleaseRepo() *fakeReleaseRepo {
	return &fakeReleaseRepo{records: make(map[string]*domain.Release)}
}

func (f *fakeReleaseRepo) Create(_ context.Context, release *domain.Release) error {
	f.nextID++
	release.ID = fmt.Sprintf("rel-%d", f.nextID)
	stored := *release
	f.records[release.ID] = &stored
	return nil
}

func (f *fakeReleaseRepo) Update(_ context.Context, release *domain.Release) error {
	if _, ok := f.records[release.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *release
	f.records[release.ID] = &stored
	return nil
}

func (f *fakeReleaseRepo) GetByID(_ context.Context, id string) (*domain.Release, error) {
	stored, ok := f.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	out := *stored
	return &out, nil
}

func (f *fakeReleaseRepo) GetPublishedBySlug(_ context.Context, slug string) (*domain.Release, error) {
	for _, stored := range f.records {
		if stored.Visibility == domain.VisibilityPublished && stored.Slug != nil && *stored.Slug == slug {
			out := *stored
			return &out, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeReleaseRepo) ListWithFilter(_ context.Context, filter repository.ReleaseFilter) ([]domain.Release, error) {
	var result []domain.Release
	for _, stored := range f.records {
		if filter.OwnerID != nil && stored.UserID != *filter.OwnerID {
			continue
		}
		if filter.Visibility != nil && stored.Visibility != *filter.Visibility {
			continue
		}
		result = append(result, *stored)
	}
	return result, nil
}

func (f *fakeReleaseRepo) ListPublished(_ context.Context, limit, offset int) ([]domain.Release, error) {
	f.lastLimit, f.lastOffset = limit, offset

	var result []domain.Release
	for _, stored := range f.records {
		if stored.Visibility == domain.VisibilityPublished {
			result = append(result, *stored)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PublishedAt.After(*result[j].PublishedAt)
	})
	if offset > len(result) {
		offset = len(result)
	}
	result = result[offset:]
	if limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakeReleaseRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.records, id)
	return nil
}

type capturingDispatcher struct {
	published []events.Event
}

func (d *capturingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *capturingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func TestReleaseLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newFakeReleaseRepo()
	dispatcher := &capturingDispatcher{}
	svc := NewReleaseService(repo, dispatcher)

	release, err := svc.Create(ctx, "owner-1", ReleaseCreateInput{
		Title:     "V1",
		Version:   "1.0",
		ContentMD: "initial notes",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.VisibilityDraft, release.Visibility)
	assert.Nil(t, release.Slug)
	assert.Nil(t, release.PublishedAt)

	published, err := svc.Publish(ctx, "owner-1", release.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.VisibilityPublished, published.Visibility)
	require.NotNil(t, published.Slug)
	assert.Equal(t, "v1-1-0", *published.Slug)
	require.NotNil(t, published.PublishedAt)
	firstPublish := *published.PublishedAt

	require.Len(t, dispatcher.published, 1)
	payload, ok := dispatcher.published[0].Payload.(events.ReleasePublishedPayload)
	require.True(t, ok)
	assert.Equal(t, release.ID, payload.ReleaseID)
	assert.Equal(t, "v1-1-0", payload.Slug)

	// Re-publishing refreshes the timestamp but keeps the slug.
	republished, err := svc.Publish(ctx, "owner-1", release.ID)
	require.NoError(t, err)
	assert.Equal(t, "v1-1-0", *republished.Slug)
	assert.False(t, republished.PublishedAt.Before(firstPublish))

	unpublished, err := svc.Unpublish(ctx, "owner-1", release.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.VisibilityDraft, unpublished.Visibility)
	require.NotNil(t, unpublished.Slug)
	assert.Equal(t, "v1-1-0", *unpublished.Slug)
	assert.NotNil(t, unpublished.PublishedAt)

	// Title change regenerates the slug because one was already assigned.
	newTitle := "V2"
	updated, err := svc.Update(ctx, "owner-1", release.ID, ReleaseUpdateInput{Title: &newTitle})
	require.NoError(t, err)
	require.NotNil(t, updated.Slug)
	assert.Equal(t, "v2-1-0", *updated.Slug)
}

func TestReleaseUpdateDraftKeepsNilSlug(t *testing.T) {
	ctx := context.Background()
	svc := NewReleaseService(newFakeReleaseRepo(), nil)

	release, err := svc.Create(ctx, "owner-1", ReleaseCreateInput{Title: "Draft", Version: "0.1"})
	require.NoError(t, err)

	newTitle := "Renamed Draft"
	updated, err := svc.Update(ctx, "owner-1", release.ID, ReleaseUpdateInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Draft", updated.Title)
	assert.Nil(t, updated.Slug)
}

func TestReleaseUpdatePartialFields(t *testing.T) {
	ctx := context.Background()
	svc := NewReleaseService(newFakeReleaseRepo(), nil)

	release, err := svc.Create(ctx, "owner-1", ReleaseCreateInput{
		Title:     "Original",
		Version:   "1.0",
		ContentMD: "body",
	})
	require.NoError(t, err)

	newContent := "revised body"
	updated, err := svc.Update(ctx, "owner-1", release.ID, ReleaseUpdateInput{ContentMD: &newContent})
	require.NoError(t, err)
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, "1.0", updated.Version)
	assert.Equal(t, "revised body", updated.ContentMD)
}

func TestReleaseOwnershipEnforcement(t *testing.T) {
	ctx := context.Background()
	svc := NewReleaseService(newFakeReleaseRepo(), nil)

	release, err := svc.Create(ctx, "owner-1", ReleaseCreateInput{Title: "Mine", Version: "1.0"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		run      func() error
		wantCode string
	}{
		{
			name:     "foreign get is forbidden",
			run:      func() error { _, err := svc.Get(ctx, "owner-2", release.ID); return err },
			wantCode: "FORBIDDEN",
		},
		{
			name:     "foreign delete is forbidden",
			run:      func() error { return svc.Delete(ctx, "owner-2", release.ID) },
			wantCode: "FORBIDDEN",
		},
		{
			name:     "foreign publish is forbidden",
			run:      func() error { _, err := svc.Publish(ctx, "owner-2", release.ID); return err },
			wantCode: "FORBIDDEN",
		},
		{
			name:     "missing id is not found",
			run:      func() error { _, err := svc.Get(ctx, "owner-1", "rel-999"); return err },
			wantCode: "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			domainErr := apperrors.ToDomainError(err)
			assert.Equal(t, tt.wantCode, domainErr.Code)
		})
	}
}

func TestReleaseCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewReleaseService(newFakeReleaseRepo(), nil)

	tests := []struct {
		name  string
		input ReleaseCreateInput
	}{
		{name: "empty title", input: ReleaseCreateInput{Version: "1.0"}},
		{name: "title too long", input: ReleaseCreateInput{Title: strings.Repeat("a", 201), Version: "1.0"}},
		{name: "empty version", input: ReleaseCreateInput{Title: "Valid"}},
		{name: "version too long", input: ReleaseCreateInput{Title: "Valid", Version: strings.Repeat("9", 51)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, "owner-1", tt.input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
		})
	}
}

func TestPublicGetUnknownSlug(t *testing.T) {
	svc := NewReleaseService(newFakeReleaseRepo(), nil)

	_, err := svc.PublicGet(context.Background(), "no-such-slug")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestPublicGetIgnoresDrafts(t *testing.T) {
	ctx := context.Background()
	svc := NewReleaseService(newFakeReleaseRepo(), nil)

	release, err := svc.Create(ctx, "owner-1", ReleaseCreateInput{Title: "V1", Version: "1.0"})
	require.NoError(t, err)
	_, err = svc.Publish(ctx, "owner-1", release.ID)
	require.NoError(t, err)
	_, err = svc.Unpublish(ctx, "owner-1", release.ID)
	require.NoError(t, err)

	// The slug survives unpublish but the record is no longer resolvable.
	_, err = svc.PublicGet(ctx, "v1-1-0")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func seedRelease(repo *fakeReleaseRepo, id, owner string, visibility domain.Visibility, publishedAt *time.Time) {
	var slug *string
	if publishedAt != nil {
		s := "slug-" + id
		slug = &s
	}
	repo.records[id] = &domain.Release{
		ID:          id,
		UserID:      owner,
		Title:       "Release " + id,
		Version:     "1.0",
		Visibility:  visibility,
		Slug:        slug,
		PublishedAt: publishedAt,
	}
}

func TestPublicList(t *testing.T) {
	ctx := context.Background()
	repo := newFakeReleaseRepo()
	svc := NewReleaseService(repo, nil)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	oldest := base
	middle := base.Add(time.Hour)
	newest := base.Add(2 * time.Hour)
	seedRelease(repo, "a", "owner-1", domain.VisibilityPublished, &oldest)
	seedRelease(repo, "b", "owner-2", domain.VisibilityPublished, &newest)
	seedRelease(repo, "c", "owner-1", domain.VisibilityPublished, &middle)
	seedRelease(repo, "d", "owner-1", domain.VisibilityDraft, nil)
	// unpublished releases keep their timestamp but stay hidden
	seedRelease(repo, "e", "owner-2", domain.VisibilityDraft, &oldest)

	result, err := svc.PublicList(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "b", result[0].ID)
	assert.Equal(t, "c", result[1].ID)
	assert.Equal(t, "a", result[2].ID)

	// offset skips past the newest entries
	result, err = svc.PublicList(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "c", result[0].ID)

	// an oversized limit is capped before reaching the store
	_, err = svc.PublicList(ctx, 250, 0)
	require.NoError(t, err)
	assert.Equal(t, 100, repo.lastLimit)

	// zero falls back to the default page size
	_, err = svc.PublicList(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 50, repo.lastLimit)
}

// vanishingReleaseRepo serves reads but reports the row gone on write,
// simulating a delete racing the update.
type vanishingReleaseRepo struct {
	*fakeReleaseRepo
}

func (r *vanishingReleaseRepo) Update(context.Context, *domain.Release) error {
	return pgx.ErrNoRows
}

func TestUpdateRowDeletedConcurrently(t *testing.T) {
	ctx := context.Background()
	inner := newFakeReleaseRepo()
	svc := NewReleaseService(&vanishingReleaseRepo{fakeReleaseRepo: inner}, nil)

	release := &domain.Release{UserID: "owner-1", Title: "Mine", Version: "1.0"}
	require.NoError(t, inner.Create(ctx, release))

	newTitle := "Renamed"
	_, err := svc.Update(ctx, "owner-1", release.ID, ReleaseUpdateInput{Title: &newTitle})
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, 404, domainErr.HTTPStatus)
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "zero uses default", limit: 0, want: 50},
		{name: "negative uses default", limit: -5, want: 50},
		{name: "within range passes through", limit: 7, want: 7},
		{name: "above max is capped", limit: 250, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampLimit(tt.limit))
		})
	}
}
