package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/release-notes-service/internal/domain"
)

// ApplicationRepository encapsulates hiring application persistence.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	Update(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	List(ctx context.Context) ([]domain.Application, error)
	Delete(ctx context.Context, id string) error
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository returns a Postgres-backed implementation.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

const applicationColumns = `id, company, role, job_type, status, date_sent, notes, created_at, updated_at`

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	const query = `
        INSERT INTO applications (company, role, job_type, status, date_sent, notes)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		app.Company,
		app.Role,
		app.JobType,
		app.Status,
		app.DateSent,
		app.Notes,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
}

func (r *applicationRepository) Update(ctx context.Context, app *domain.Application) error {
	const query = `
        UPDATE applications SET company=$1, role=$2, job_type=$3, status=$4, date_sent=$5, notes=$6, updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		app.Company,
		app.Role,
		app.JobType,
		app.Status,
		app.DateSent,
		app.Notes,
		app.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	const query = `SELECT ` + applicationColumns + ` FROM applications WHERE id=$1`

	var app domain.Application
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&app.ID,
		&app.Company,
		&app.Role,
		&app.JobType,
		&app.Status,
		&app.DateSent,
		&app.Notes,
		&app.CreatedAt,
		&app.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) List(ctx context.Context) ([]domain.Application, error) {
	const query = `SELECT ` + applicationColumns + ` FROM applications ORDER BY date_sent DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID,
			&app.Company,
			&app.Role,
			&app.JobType,
			&app.Status,
			&app.DateSent,
			&app.Notes,
			&app.CreatedAt,
			&app.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, app)
	}
	return result, rows.Err()
}

func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM applications WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
