package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/release-notes-service/internal/domain"
)

// ReleaseFilter captures owner listing parameters.
type ReleaseFilter struct {
	OwnerID    *string
	Visibility *domain.Visibility
	Limit      int
	Offset     int
}

// ReleaseRepository encapsulates release persistence.
type ReleaseRepository interface {
	Create(ctx context.Context, release *domain.Release) error
	Update(ctx context.Context, release *domain.Release) error
	GetByID(ctx context.Context, id string) (*domain.Release, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.Release, error)
	ListWithFilter(ctx context.Context, filter ReleaseFilter) ([]domain.Release, error)
	ListPublished(ctx context.Context, limit, offset int) ([]domain.Release, error)
	Delete(ctx context.Context, id string) error
}

type releaseRepository struct {
	pool *pgxpool.Pool
}

// NewReleaseRepository instantiates repository.
func NewReleaseRepository(pool *pgxpool.Pool) ReleaseRepository {
	return &releaseRepository{pool: pool}
}

const releaseColumns = `id, user_id, title, version, content_md, visibility, slug, published_at, created_at, updated_at`

func (r *releaseRepository) Create(ctx context.Context, release *domain.Release) error {
	const query = `
        INSERT INTO releases (user_id, title, version, content_md, visibility, slug, published_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		release.UserID,
		release.Title,
		release.Version,
		release.ContentMD,
		release.Visibility,
		release.Slug,
		release.PublishedAt,
	).Scan(&release.ID, &release.CreatedAt, &release.UpdatedAt)
}

func (r *releaseRepository) Update(ctx context.Context, release *domain.Release) error {
	const query = `
        UPDATE releases SET title=$1, version=$2, content_md=$3, visibility=$4,
            slug=$5, published_at=$6, updated_at=$7
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		release.Title,
		release.Version,
		release.ContentMD,
		release.Visibility,
		release.Slug,
		release.PublishedAt,
		release.UpdatedAt,
		release.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *releaseRepository) GetByID(ctx context.Context, id string) (*domain.Release, error) {
	query := fmt.Sprintf(`SELECT %s FROM releases WHERE id=$1`, releaseColumns)
	return r.fetchSingle(ctx, query, id)
}

// GetPublishedBySlug returns the first published row carrying the slug.
// Slugs are not unique; colliding records resolve to whichever row the
// store yields first.
func (r *releaseRepository) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Release, error) {
	query := fmt.Sprintf(`SELECT %s FROM releases WHERE slug=$1 AND visibility=$2 LIMIT 1`, releaseColumns)
	return r.fetchSingle(ctx, query, slug, domain.VisibilityPublished)
}

func (r *releaseRepository) fetchSingle(ctx context.Context, query string, args ...any) (*domain.Release, error) {
	var release domain.Release
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&release.ID,
		&release.UserID,
		&release.Title,
		&release.Version,
		&release.ContentMD,
		&release.Visibility,
		&release.Slug,
		&release.PublishedAt,
		&release.CreatedAt,
		&release.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &release, nil
}

func (r *releaseRepository) ListWithFilter(ctx context.Context, filter ReleaseFilter) ([]domain.Release, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		clauses = append(clauses, fmt.Sprintf("user_id=$%d", len(args)))
	}
	if filter.Visibility != nil {
		args = append(args, *filter.Visibility)
		clauses = append(clauses, fmt.Sprintf("visibility=$%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM releases WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		releaseColumns, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReleases(rows)
}

func (r *releaseRepository) ListPublished(ctx context.Context, limit, offset int) ([]domain.Release, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := fmt.Sprintf(`SELECT %s FROM releases WHERE visibility=$1 ORDER BY published_at DESC LIMIT %d OFFSET %d`,
		releaseColumns, limit, offset)

	rows, err := r.pool.Query(ctx, query, domain.VisibilityPublished)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReleases(rows)
}

func (r *releaseRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM releases WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanReleases(rows pgx.Rows) ([]domain.Release, error) {
	var result []domain.Release
	for rows.Next() {
		var release domain.Release
		if err := rows.Scan(
			&release.ID,
			&release.UserID,
			&release.Title,
			&release.Version,
			&release.ContentMD,
			&release.Visibility,
			&release.Slug,
			&release.PublishedAt,
			&release.CreatedAt,
			&release.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, release)
	}
	return result, rows.Err()
}
