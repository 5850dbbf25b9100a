package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/release-notes-service/internal/domain"
)

// ContactMessageRepository persists portfolio contact form submissions.
type ContactMessageRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	List(ctx context.Context) ([]domain.ContactMessage, error)
}

type contactMessageRepository struct {
	pool *pgxpool.Pool
}

// NewContactMessageRepository returns a Postgres-backed implementation.
func NewContactMessageRepository(pool *pgxpool.Pool) ContactMessageRepository {
	return &contactMessageRepository{pool: pool}
}

func (r *contactMessageRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	const query = `
        INSERT INTO contact_messages (name, email, company, message, status)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, submitted_at`
	return r.pool.QueryRow(ctx, query,
		msg.Name,
		msg.Email,
		msg.Company,
		msg.Message,
		msg.Status,
	).Scan(&msg.ID, &msg.SubmittedAt)
}

func (r *contactMessageRepository) List(ctx context.Context) ([]domain.ContactMessage, error) {
	const query = `
        SELECT id, name, email, company, message, status, submitted_at
        FROM contact_messages ORDER BY submitted_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ContactMessage
	for rows.Next() {
		var msg domain.ContactMessage
		if err := rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&msg.Company,
			&msg.Message,
			&msg.Status,
			&msg.SubmittedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, msg)
	}
	return result, rows.Err()
}
