package service

import (
	"context"

	"github.com/portfolio-site/backend/internal/model"
)

// ProjectService exposes the read-only portfolio queries.
type ProjectService interface {
	// List returns all projects, newest first. Never nil.
	List(ctx context.Context) ([]*model.PortfolioProject, error)
	// ListFeatured returns featured projects, newest first. Never nil.
	ListFeatured(ctx context.Context) ([]*model.PortfolioProject, error)
	// Seed upserts projects by title. Used by the operator CLI only.
	Seed(ctx context.Context, projects []*model.PortfolioProject) error
}
