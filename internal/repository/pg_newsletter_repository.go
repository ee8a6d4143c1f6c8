package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio-site/backend/internal/model"
)

// PgNewsletterRepository is the PostgreSQL implementation of NewsletterRepository.
type PgNewsletterRepository struct {
	pool *pgxpool.Pool
}

// NewPgNewsletterRepository creates a PgNewsletterRepository backed by the given pool.
func NewPgNewsletterRepository(pool *pgxpool.Pool) *PgNewsletterRepository {
	return &PgNewsletterRepository{pool: pool}
}

var _ NewsletterRepository = (*PgNewsletterRepository)(nil)

// subscribeSQL resolves all three transitions in one statement:
//
//	absent   -> INSERT fires, inserted = true
//	inactive -> DO UPDATE fires (is_active = FALSE matched), inserted = false
//	active   -> DO UPDATE is skipped, the existing row is read unchanged
//
// xmax is zero only for a freshly inserted tuple.
const subscribeSQL = `
WITH upserted AS (
	INSERT INTO newsletter_subscriptions (email)
	VALUES ($1)
	ON CONFLICT (email) DO UPDATE
		SET is_active = TRUE, subscribed_at = NOW()
		WHERE newsletter_subscriptions.is_active = FALSE
	RETURNING id, email, subscribed_at, is_active, (xmax = 0) AS inserted, TRUE AS changed
)
SELECT id, email, subscribed_at, is_active, inserted, changed FROM upserted
UNION ALL
SELECT id, email, subscribed_at, is_active, FALSE, FALSE
FROM newsletter_subscriptions
WHERE email = $1 AND NOT EXISTS (SELECT 1 FROM upserted)`

// Subscribe applies the subscribe transition for email atomically.
func (r *PgNewsletterRepository) Subscribe(ctx context.Context, email string) (*model.SubscribeResult, error) {
	var (
		s                 model.NewsletterSubscription
		inserted, changed bool
	)
	err := r.pool.QueryRow(ctx, subscribeSQL, email).
		Scan(&s.ID, &s.Email, &s.SubscribedAt, &s.IsActive, &inserted, &changed)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, mapError(err)
	}
	if errors.Is(err, pgx.ErrNoRows) || (!changed && !s.IsActive) {
		// A concurrent subscriber committed the row after this statement's
		// snapshot was taken: DO UPDATE saw it active and skipped, while the
		// fallback SELECT saw nothing or the stale version. Re-read it.
		existing, ferr := r.FindByEmail(ctx, email)
		if ferr != nil {
			return nil, ferr
		}
		return &model.SubscribeResult{Subscription: existing, Outcome: model.SubscribeAlreadyActive}, nil
	}

	outcome := model.SubscribeAlreadyActive
	switch {
	case inserted:
		outcome = model.SubscribeCreated
	case changed:
		outcome = model.SubscribeReactivated
	}
	return &model.SubscribeResult{Subscription: &s, Outcome: outcome}, nil
}

// FindByEmail returns the subscription for email, or ErrNotFound.
func (r *PgNewsletterRepository) FindByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
	var s model.NewsletterSubscription
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, subscribed_at, is_active
		 FROM newsletter_subscriptions WHERE email = $1`,
		email,
	).Scan(&s.ID, &s.Email, &s.SubscribedAt, &s.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SetActive sets the active flag for email. Returns ErrNotFound when no row exists.
func (r *PgNewsletterRepository) SetActive(ctx context.Context, email string, active bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE newsletter_subscriptions SET is_active = $2 WHERE email = $1`,
		email, active,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
