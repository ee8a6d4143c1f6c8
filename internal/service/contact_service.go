package service

import (
	"context"

	"github.com/portfolio-site/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates in and stores it as a new submission. A
	// *model.ValidationError is returned before any store access when the
	// input is rejected.
	Submit(ctx context.Context, in model.ContactInput) (*model.ContactSubmission, error)
}
