package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/portfolio-site/backend/internal/model"
	"github.com/portfolio-site/backend/internal/repository"
	"github.com/portfolio-site/backend/internal/service"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// seedFile is the YAML layout accepted by "projects seed".
type seedFile struct {
	Projects []*model.PortfolioProject `yaml:"projects"`
}

func newProjectsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage portfolio projects",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Insert or update projects from a YAML file, matched by title",
		Long: `Insert or update projects from a YAML file, matched by title.

Example file:
  projects:
    - title: Site backend
      description: JSON API for this site
      github_url: https://github.com/me/site
      technologies: [Go, PostgreSQL]
      is_featured: true`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			projects, err := parseSeedFile(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			ctx := cmd.Context()
			pool, err := opts.openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			svc := service.NewProjectService(repository.NewPgProjectRepository(pool))
			if err := svc.Seed(ctx, projects); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d projects\n", len(projects))
			return nil
		},
	})
	return cmd
}

// parseSeedFile decodes a seed document, rejecting unknown keys.
func parseSeedFile(r io.Reader) ([]*model.PortfolioProject, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc seedFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty seed file")
		}
		return nil, err
	}
	for _, p := range doc.Projects {
		if p == nil {
			return nil, errors.New("empty project entry")
		}
		if p.Technologies == nil {
			p.Technologies = []string{}
		}
	}
	return doc.Projects, nil
}
