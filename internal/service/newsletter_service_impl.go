package service

import (
	"context"
	"log/slog"

	"github.com/portfolio-site/backend/internal/model"
	"github.com/portfolio-site/backend/internal/repository"
)

type newsletterServiceImpl struct {
	repo repository.NewsletterRepository
}

// NewNewsletterService creates a NewsletterService backed by the given repository.
func NewNewsletterService(repo repository.NewsletterRepository) NewsletterService {
	return &newsletterServiceImpl{repo: repo}
}

func (s *newsletterServiceImpl) Subscribe(ctx context.Context, in model.SubscribeInput) (*model.SubscribeResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	res, err := s.repo.Subscribe(ctx, in.Email)
	if err != nil {
		slog.ErrorContext(ctx, "newsletter subscription failed", "error", err)
		return nil, err
	}
	slog.InfoContext(ctx, "newsletter subscription",
		"subscription_id", res.Subscription.ID,
		"outcome", string(res.Outcome),
	)
	return res, nil
}

func (s *newsletterServiceImpl) Deactivate(ctx context.Context, email string) error {
	if err := s.repo.SetActive(ctx, email, false); err != nil {
		return err
	}
	slog.InfoContext(ctx, "newsletter subscription deactivated")
	return nil
}
