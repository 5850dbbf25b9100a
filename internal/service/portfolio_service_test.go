package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/release-notes-service/internal/domain"
	"github.com/spec-kit/release-notes-service/internal/events"
	"github.com/spec-kit/release-notes-service/internal/repository"
	apperrors "github.com/spec-kit/release-notes-service/pkg/util"
)

// fakeEngagementRepo mimics the Redis counters in memory.
type fakeEngagementRepo struct {
	total    int64
	sessions map[string]struct{}
}

func newFakeEngagementRepo() *fakeEngagementRepo {
	return &fakeEngagementRepo{sessions: make(map[string]struct{})}
}

func (f *fakeEngagementRepo) IncrementViews(_ context.Context, sessionID string) (repository.ViewStats, bool, error) {
	f.total++
	newVisitor := false
	if sessionID != "" {
		if _, seen := f.sessions[sessionID]; !seen {
			f.sessions[sessionID] = struct{}{}
			newVisitor = true
		}
	}
	return repository.ViewStats{Total: f.total, UniqueVisitors: int64(len(f.sessions))}, newVisitor, nil
}

func (f *fakeEngagementRepo) GetViews(context.Context) (repository.ViewStats, error) {
	return repository.ViewStats{Total: f.total, UniqueVisitors: int64(len(f.sessions))}, nil
}

type messageRepoMock struct {
	createFn func(ctx context.Context, msg *domain.ContactMessage) error
	listFn   func(ctx context.Context) ([]domain.ContactMessage, error)
}

func (m *messageRepoMock) Create(ctx context.Context, msg *domain.ContactMessage) error {
	return m.createFn(ctx, msg)
}

func (m *messageRepoMock) List(ctx context.Context) ([]domain.ContactMessage, error) {
	return m.listFn(ctx)
}

func TestTrackViewCountsSessions(t *testing.T) {
	ctx := context.Background()
	svc := NewPortfolioService(newFakeEngagementRepo(), nil, nil, nil)

	stats, newVisitor, err := svc.TrackView(ctx, "session-a")
	require.NoError(t, err)
	assert.True(t, newVisitor)
	assert.Equal(t, int64(1), stats.Total)
	assert.Equal(t, int64(1), stats.UniqueVisitors)

	stats, newVisitor, err = svc.TrackView(ctx, "session-a")
	require.NoError(t, err)
	assert.False(t, newVisitor)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.UniqueVisitors)

	// Anonymous views bump the total without touching unique visitors.
	stats, newVisitor, err = svc.TrackView(ctx, "")
	require.NoError(t, err)
	assert.False(t, newVisitor)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(1), stats.UniqueVisitors)
}

func TestSubmitContactStoresAndNotifies(t *testing.T) {
	var stored *domain.ContactMessage
	messages := &messageRepoMock{
		createFn: func(_ context.Context, msg *domain.ContactMessage) error {
			msg.ID = "msg-1"
			stored = msg
			return nil
		},
	}
	dispatcher := &capturingDispatcher{}
	svc := NewPortfolioService(nil, messages, dispatcher, nil)

	msg, err := svc.SubmitContact(context.Background(), ContactSubmission{
		Name:    "Recruiter",
		Email:   "recruiter@example.com",
		Message: "Let's talk",
	})
	require.NoError(t, err)
	assert.Equal(t, "msg-1", msg.ID)
	assert.Equal(t, domain.ContactMessageReceived, msg.Status)

	require.NotNil(t, stored)
	require.Len(t, dispatcher.published, 1)
	payload, ok := dispatcher.published[0].Payload.(events.ContactSubmittedPayload)
	require.True(t, ok)
	assert.Equal(t, "msg-1", payload.MessageID)
	assert.Equal(t, "recruiter@example.com", payload.Email)
}

func TestSubmitContactValidation(t *testing.T) {
	svc := NewPortfolioService(nil, nil, nil, nil)

	tests := []struct {
		name  string
		input ContactSubmission
	}{
		{name: "missing name", input: ContactSubmission{Email: "a@b.c", Message: "hi"}},
		{name: "missing message", input: ContactSubmission{Name: "A", Email: "a@b.c"}},
		{name: "bad email", input: ContactSubmission{Name: "A", Email: "not-an-email", Message: "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SubmitContact(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
		})
	}
}

func TestMessagesUnreadCount(t *testing.T) {
	messages := &messageRepoMock{
		listFn: func(context.Context) ([]domain.ContactMessage, error) {
			return []domain.ContactMessage{
				{ID: "1", Status: domain.ContactMessageReceived},
				{ID: "2", Status: domain.ContactMessageRead},
				{ID: "3", Status: domain.ContactMessageReceived},
			}, nil
		},
	}
	svc := NewPortfolioService(nil, messages, nil, nil)

	msgs, unread, err := svc.Messages(context.Background())
	require.NoError(t, err)
	assert.Len(t, msgs, 3)
	assert.Equal(t, 2, unread)
}

func TestSkillsFilterAndAverage(t *testing.T) {
	svc := NewPortfolioService(nil, nil, nil, nil)

	filtered, categories, average := svc.Skills("Database")
	require.Len(t, filtered, 2)
	for _, skill := range filtered {
		assert.Equal(t, "Database", skill.Category)
	}
	assert.InDelta(t, 84.0, average, 0.001)
	assert.Contains(t, categories, "Backend")
	assert.Contains(t, categories, "Database")

	all, _, _ := svc.Skills("")
	assert.Len(t, all, 10)
}

func TestProjectsTechUnion(t *testing.T) {
	svc := NewPortfolioService(nil, nil, nil, nil)

	list, techs := svc.Projects()
	assert.Len(t, list, 3)
	assert.Contains(t, techs, "Go")
	assert.Contains(t, techs, "WebSocket")

	seen := make(map[string]int)
	for _, tech := range techs {
		seen[tech]++
	}
	for tech, count := range seen {
		assert.Equalf(t, 1, count, "tech %q duplicated", tech)
	}
}

func TestStatsAggregate(t *testing.T) {
	svc := NewPortfolioService(nil, nil, nil, nil)

	stats := svc.Stats()
	assert.Equal(t, 3, stats.Experience.Years)
	assert.Equal(t, 80, stats.Experience.FeaturesShipped)
	assert.Equal(t, 0, stats.Experience.CriticalIncidents)
	assert.NotEmpty(t, stats.Highlights)
	assert.NotEmpty(t, stats.FunFacts)
	assert.Equal(t, "Available Immediately", stats.Availability.Status)
	assert.Contains(t, stats.Availability.WorkPreferences, "Remote")
}

func TestTestimonialsReturnsCopy(t *testing.T) {
	svc := NewPortfolioService(nil, nil, nil, nil)

	first := svc.Testimonials(false)
	require.Len(t, first, 5)
	first[0].Quote = "mutated"

	second := svc.Testimonials(false)
	assert.NotEqual(t, "mutated", second[0].Quote)
}
