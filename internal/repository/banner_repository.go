package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/release-notes-service/internal/domain"
)

// BannerRepository manages the singleton status banner row.
type BannerRepository interface {
	GetActive(ctx context.Context) (*domain.StatusBanner, error)
	Get(ctx context.Context) (*domain.StatusBanner, error)
	Create(ctx context.Context, banner *domain.StatusBanner) error
	Update(ctx context.Context, banner *domain.StatusBanner) error
}

type bannerRepository struct {
	pool *pgxpool.Pool
}

// NewBannerRepository returns a Postgres-backed implementation.
func NewBannerRepository(pool *pgxpool.Pool) BannerRepository {
	return &bannerRepository{pool: pool}
}

func (r *bannerRepository) GetActive(ctx context.Context) (*domain.StatusBanner, error) {
	const query = `SELECT id, message, is_active, updated_at FROM status_banner WHERE is_active=TRUE LIMIT 1`
	return r.fetch(ctx, query)
}

func (r *bannerRepository) Get(ctx context.Context) (*domain.StatusBanner, error) {
	const query = `SELECT id, message, is_active, updated_at FROM status_banner LIMIT 1`
	return r.fetch(ctx, query)
}

func (r *bannerRepository) fetch(ctx context.Context, query string) (*domain.StatusBanner, error) {
	var banner domain.StatusBanner
	if err := r.pool.QueryRow(ctx, query).Scan(
		&banner.ID,
		&banner.Message,
		&banner.IsActive,
		&banner.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *bannerRepository) Create(ctx context.Context, banner *domain.StatusBanner) error {
	const query = `
        INSERT INTO status_banner (message, is_active)
        VALUES ($1, $2)
        RETURNING id, updated_at`
	return r.pool.QueryRow(ctx, query, banner.Message, banner.IsActive).
		Scan(&banner.ID, &banner.UpdatedAt)
}

func (r *bannerRepository) Update(ctx context.Context, banner *domain.StatusBanner) error {
	const query = `
        UPDATE status_banner SET message=$1, is_active=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING updated_at`
	return r.pool.QueryRow(ctx, query, banner.Message, banner.IsActive, banner.ID).
		Scan(&banner.UpdatedAt)
}
