package repository

import (
	"context"

	"github.com/portfolio-site/backend/internal/model"
)

// DB reports whether the database connection is alive.
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	// Create inserts in and returns the stored row with its id and
	// created_at assigned by the database.
	Create(ctx context.Context, in model.ContactInput) (*model.ContactSubmission, error)
}

// NewsletterRepository persists newsletter subscriptions, one row per email.
type NewsletterRepository interface {
	// Subscribe atomically inserts, reactivates or returns the row for email.
	Subscribe(ctx context.Context, email string) (*model.SubscribeResult, error)
	FindByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error)
	// SetActive toggles the active flag without touching subscribed_at.
	SetActive(ctx context.Context, email string, active bool) error
}

// ProjectRepository reads portfolio projects and lets operators seed them.
type ProjectRepository interface {
	List(ctx context.Context) ([]*model.PortfolioProject, error)
	ListFeatured(ctx context.Context) ([]*model.PortfolioProject, error)
	// UpsertByTitle inserts or updates the project with the same title.
	UpsertByTitle(ctx context.Context, p *model.PortfolioProject) error
}
