package service

import (
	"context"
	"log/slog"

	"github.com/portfolio-site/backend/internal/model"
	"github.com/portfolio-site/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit always inserts a new row; identical submissions are not merged.
func (s *contactServiceImpl) Submit(ctx context.Context, in model.ContactInput) (*model.ContactSubmission, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c, err := s.repo.Create(ctx, in)
	if err != nil {
		slog.ErrorContext(ctx, "contact submission failed", "error", err)
		return nil, err
	}
	slog.InfoContext(ctx, "contact submission stored", "contact_id", c.ID)
	return c, nil
}
