package model

import "time"

// PortfolioProject is a showcase entry. Projects are managed out-of-band
// (see sitectl projects seed) and are read-only over the API.
type PortfolioProject struct {
	ID           int64     `json:"id" yaml:"-"`
	Title        string    `json:"title" yaml:"title"`
	Description  string    `json:"description" yaml:"description"`
	ImageURL     *string   `json:"image_url" yaml:"image_url"`
	ProjectURL   *string   `json:"project_url" yaml:"project_url"`
	GitHubURL    *string   `json:"github_url" yaml:"github_url"`
	Technologies []string  `json:"technologies" yaml:"technologies"`
	IsFeatured   bool      `json:"is_featured" yaml:"is_featured"`
	CreatedAt    time.Time `json:"created_at" yaml:"-"`
	UpdatedAt    time.Time `json:"updated_at" yaml:"-"`
}
