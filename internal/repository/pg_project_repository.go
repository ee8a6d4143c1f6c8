package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio-site/backend/internal/model"
)

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository backed by the given pool.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

const projectColumns = `id, title, description, image_url, project_url, github_url,
	technologies, is_featured, created_at, updated_at`

// List returns every project, newest first.
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.PortfolioProject, error) {
	return r.query(ctx,
		`SELECT `+projectColumns+` FROM portfolio_projects ORDER BY created_at DESC, id DESC`)
}

// ListFeatured returns featured projects, newest first.
func (r *PgProjectRepository) ListFeatured(ctx context.Context) ([]*model.PortfolioProject, error) {
	return r.query(ctx,
		`SELECT `+projectColumns+` FROM portfolio_projects
		 WHERE is_featured = TRUE ORDER BY created_at DESC, id DESC`)
}

func (r *PgProjectRepository) query(ctx context.Context, sql string, args ...any) ([]*model.PortfolioProject, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*model.PortfolioProject{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func scanProject(row pgx.Row) (*model.PortfolioProject, error) {
	var p model.PortfolioProject
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.ProjectURL, &p.GitHubURL,
		&p.Technologies, &p.IsFeatured, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return &p, nil
}

// UpsertByTitle inserts p, or updates the row with the same title in place.
// created_at is kept on update so listing order stays stable across reseeds.
func (r *PgProjectRepository) UpsertByTitle(ctx context.Context, p *model.PortfolioProject) error {
	techs := p.Technologies
	if techs == nil {
		techs = []string{}
	}
	techJSON, err := json.Marshal(techs)
	if err != nil {
		return fmt.Errorf("encode technologies: %w", err)
	}

	err = r.pool.QueryRow(ctx,
		`INSERT INTO portfolio_projects
			(title, description, image_url, project_url, github_url, technologies, is_featured)
		 VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7)
		 ON CONFLICT (title) DO UPDATE SET
			description  = EXCLUDED.description,
			image_url    = EXCLUDED.image_url,
			project_url  = EXCLUDED.project_url,
			github_url   = EXCLUDED.github_url,
			technologies = EXCLUDED.technologies,
			is_featured  = EXCLUDED.is_featured,
			updated_at   = NOW()
		 RETURNING id, created_at, updated_at`,
		p.Title, p.Description, p.ImageURL, p.ProjectURL, p.GitHubURL, string(techJSON), p.IsFeatured,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return mapError(err)
	}
	p.Technologies = techs
	return nil
}
