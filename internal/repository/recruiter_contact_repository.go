package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/release-notes-service/internal/domain"
)

// RecruiterContactRepository encapsulates recruiter contact persistence.
type RecruiterContactRepository interface {
	Create(ctx context.Context, contact *domain.RecruiterContact) error
	Update(ctx context.Context, contact *domain.RecruiterContact) error
	GetByID(ctx context.Context, id string) (*domain.RecruiterContact, error)
	List(ctx context.Context) ([]domain.RecruiterContact, error)
	Delete(ctx context.Context, id string) error
}

type recruiterContactRepository struct {
	pool *pgxpool.Pool
}

// NewRecruiterContactRepository returns a Postgres-backed implementation.
func NewRecruiterContactRepository(pool *pgxpool.Pool) RecruiterContactRepository {
	return &recruiterContactRepository{pool: pool}
}

const recruiterContactColumns = `id, name, company, email, notes, created_at, updated_at`

func (r *recruiterContactRepository) Create(ctx context.Context, contact *domain.RecruiterContact) error {
	const query = `
        INSERT INTO recruiter_contacts (name, company, email, notes)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		contact.Name,
		contact.Company,
		contact.Email,
		contact.Notes,
	).Scan(&contact.ID, &contact.CreatedAt, &contact.UpdatedAt)
}

func (r *recruiterContactRepository) Update(ctx context.Context, contact *domain.RecruiterContact) error {
	const query = `
        UPDATE recruiter_contacts SET name=$1, company=$2, email=$3, notes=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		contact.Name,
		contact.Company,
		contact.Email,
		contact.Notes,
		contact.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *recruiterContactRepository) GetByID(ctx context.Context, id string) (*domain.RecruiterContact, error) {
	const query = `SELECT ` + recruiterContactColumns + ` FROM recruiter_contacts WHERE id=$1`

	var contact domain.RecruiterContact
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&contact.ID,
		&contact.Name,
		&contact.Company,
		&contact.Email,
		&contact.Notes,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *recruiterContactRepository) List(ctx context.Context) ([]domain.RecruiterContact, error) {
	const query = `SELECT ` + recruiterContactColumns + ` FROM recruiter_contacts ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.RecruiterContact
	for rows.Next() {
		var contact domain.RecruiterContact
		if err := rows.Scan(
			&contact.ID,
			&contact.Name,
			&contact.Company,
			&contact.Email,
			&contact.Notes,
			&contact.CreatedAt,
			&contact.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, contact)
	}
	return result, rows.Err()
}

func (r *recruiterContactRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM recruiter_contacts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
