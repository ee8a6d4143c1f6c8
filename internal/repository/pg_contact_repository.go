package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio-site/backend/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Create inserts a new contact_submissions row. The values are stored as
// given; id and created_at come from the RETURNING clause.
func (r *PgContactRepository) Create(ctx context.Context, in model.ContactInput) (*model.ContactSubmission, error) {
	var c model.ContactSubmission
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, message)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, email, message, created_at`,
		in.Name, in.Email, in.Message,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}
