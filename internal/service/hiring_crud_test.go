package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/release-notes-service/internal/domain"
	apperrors "github.com/spec-kit/release-notes-service/pkg/util"
)

type applicationRepoMock struct {
	createFn  func(ctx context.Context, app *domain.Application) error
	updateFn  func(ctx context.Context, app *domain.Application) error
	getByIDFn func(ctx context.Context, id string) (*domain.Application, error)
	listFn    func(ctx context.Context) ([]domain.Application, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (m *applicationRepoMock) Create(ctx context.Context, app *domain.Application) error {
	return m.createFn(ctx, app)
}

func (m *applicationRepoMock) Update(ctx context.Context, app *domain.Application) error {
	return m.updateFn(ctx, app)
}

func (m *applicationRepoMock) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	return m.getByIDFn(ctx, id)
}

func (m *applicationRepoMock) List(ctx context.Context) ([]domain.Application, error) {
	return m.listFn(ctx)
}

func (m *applicationRepoMock) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type bannerRepoMock struct {
	getActiveFn func(ctx context.Context) (*domain.StatusBanner, error)
	getFn       func(ctx context.Context) (*domain.StatusBanner, error)
	createFn    func(ctx context.Context, banner *domain.StatusBanner) error
	updateFn    func(ctx context.Context, banner *domain.StatusBanner) error
}

func (m *bannerRepoMock) GetActive(ctx context.Context) (*domain.StatusBanner, error) {
	return m.getActiveFn(ctx)
}

func (m *bannerRepoMock) Get(ctx context.Context) (*domain.StatusBanner, error) {
	return m.getFn(ctx)
}

func (m *bannerRepoMock) Create(ctx context.Context, banner *domain.StatusBanner) error {
	return m.createFn(ctx, banner)
}

func (m *bannerRepoMock) Update(ctx context.Context, banner *domain.StatusBanner) error {
	return m.updateFn(ctx, banner)
}

func TestCreateApplicationDefaultsStatus(t *testing.T) {
	var stored *domain.Application
	apps := &applicationRepoMock{
		createFn: func(_ context.Context, app *domain.Application) error {
			app.ID = "app-1"
			stored = app
			return nil
		},
	}
	svc := NewHiringService(HiringDependencies{ApplicationRepo: apps})

	created, err := svc.CreateApplication(context.Background(), ApplicationInput{
		Company: "Acme",
		Role:    "Backend Engineer",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusApplied, created.Status)
	require.NotNil(t, stored)
	assert.Equal(t, "Acme", stored.Company)
}

func TestCreateApplicationValidation(t *testing.T) {
	svc := NewHiringService(HiringDependencies{})

	_, err := svc.CreateApplication(context.Background(), ApplicationInput{Role: "Engineer"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestUpdateApplicationPartial(t *testing.T) {
	existing := domain.Application{
		ID:       "app-1",
		Company:  "Acme",
		Role:     "Backend Engineer",
		Status:   domain.ApplicationStatusApplied,
		DateSent: "2026-08-01",
	}
	apps := &applicationRepoMock{
		getByIDFn: func(_ context.Context, id string) (*domain.Application, error) {
			app := existing
			return &app, nil
		},
		updateFn: func(context.Context, *domain.Application) error { return nil },
	}
	svc := NewHiringService(HiringDependencies{ApplicationRepo: apps})

	status := domain.ApplicationStatusInterview
	updated, err := svc.UpdateApplication(context.Background(), "app-1", ApplicationUpdateInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusInterview, updated.Status)
	assert.Equal(t, "Acme", updated.Company)
	assert.Equal(t, "2026-08-01", updated.DateSent)
}

func TestUpdateApplicationMissing(t *testing.T) {
	apps := &applicationRepoMock{
		getByIDFn: func(context.Context, string) (*domain.Application, error) {
			return nil, pgx.ErrNoRows
		},
	}
	svc := NewHiringService(HiringDependencies{ApplicationRepo: apps})

	_, err := svc.UpdateApplication(context.Background(), "app-404", ApplicationUpdateInput{})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestGetActiveBannerAbsent(t *testing.T) {
	banner := &bannerRepoMock{
		getActiveFn: func(context.Context) (*domain.StatusBanner, error) {
			return nil, pgx.ErrNoRows
		},
	}
	svc := NewHiringService(HiringDependencies{BannerRepo: banner})

	result, err := svc.GetActiveBanner(context.Background())
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestUpsertBannerCreatesOnFirstWrite(t *testing.T) {
	var created *domain.StatusBanner
	banner := &bannerRepoMock{
		getFn: func(context.Context) (*domain.StatusBanner, error) {
			return nil, pgx.ErrNoRows
		},
		createFn: func(_ context.Context, b *domain.StatusBanner) error {
			b.ID = "banner-1"
			created = b
			return nil
		},
	}
	svc := NewHiringService(HiringDependencies{BannerRepo: banner})

	message := "Open to opportunities"
	result, err := svc.UpsertBanner(context.Background(), BannerInput{Message: &message})
	require.NoError(t, err)
	assert.Equal(t, "Open to opportunities", result.Message)
	assert.True(t, result.IsActive)
	require.NotNil(t, created)
}

func TestUpsertBannerPatchesExisting(t *testing.T) {
	banner := &bannerRepoMock{
		getFn: func(context.Context) (*domain.StatusBanner, error) {
			return &domain.StatusBanner{ID: "banner-1", Message: "old", IsActive: true}, nil
		},
		updateFn: func(context.Context, *domain.StatusBanner) error { return nil },
	}
	svc := NewHiringService(HiringDependencies{BannerRepo: banner})

	inactive := false
	result, err := svc.UpsertBanner(context.Background(), BannerInput{IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "old", result.Message)
	assert.False(t, result.IsActive)
}
