package service

import (
	"context"

	"github.com/portfolio-site/backend/internal/model"
)

// NewsletterService manages newsletter subscriptions.
type NewsletterService interface {
	// Subscribe creates the subscription for an unknown email, reactivates
	// an inactive one, and returns an active one untouched.
	Subscribe(ctx context.Context, in model.SubscribeInput) (*model.SubscribeResult, error)
	// Deactivate turns the subscription off. It is an operator action and
	// is not exposed over HTTP.
	Deactivate(ctx context.Context, email string) error
}
