package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/portfolio-site/backend/internal/model"
	"github.com/portfolio-site/backend/internal/repository"
)

type projectServiceImpl struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{repo: repo}
}

func (s *projectServiceImpl) List(ctx context.Context) ([]*model.PortfolioProject, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "portfolio projects fetch failed", "error", err)
		return nil, err
	}
	return nonNil(projects), nil
}

func (s *projectServiceImpl) ListFeatured(ctx context.Context) ([]*model.PortfolioProject, error) {
	projects, err := s.repo.ListFeatured(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "featured projects fetch failed", "error", err)
		return nil, err
	}
	return nonNil(projects), nil
}

// ErrInvalidProject is returned by Seed for entries missing a title or description.
var ErrInvalidProject = errors.New("invalid project")

func (s *projectServiceImpl) Seed(ctx context.Context, projects []*model.PortfolioProject) error {
	for i, p := range projects {
		if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.Description) == "" {
			return fmt.Errorf("%w: entry %d needs a title and a description", ErrInvalidProject, i)
		}
	}
	for _, p := range projects {
		if err := s.repo.UpsertByTitle(ctx, p); err != nil {
			return fmt.Errorf("seed %q: %w", p.Title, err)
		}
		slog.InfoContext(ctx, "project seeded", "project_id", p.ID, "title", p.Title, "featured", p.IsFeatured)
	}
	return nil
}

func nonNil(projects []*model.PortfolioProject) []*model.PortfolioProject {
	if projects == nil {
		return []*model.PortfolioProject{}
	}
	return projects
}
