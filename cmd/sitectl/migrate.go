package main

import (
	"github.com/portfolio-site/backend/internal/repository"
	"github.com/spf13/cobra"
)

var migrateCommands = []struct {
	name, short string
}{
	{"up", "Apply all pending migrations"},
	{"down", "Roll back the most recent migration"},
	{"status", "Show applied and pending migrations"},
	{"reset", "Roll back every migration"},
}

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
		Long: `Manage the database schema with the embedded goose migrations.

Example:
  sitectl migrate up
  sitectl migrate status`,
	}

	for _, mc := range migrateCommands {
		command := mc.name
		cmd.AddCommand(&cobra.Command{
			Use:   command,
			Short: mc.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				pool, err := opts.openPool(ctx)
				if err != nil {
					return err
				}
				defer pool.Close()
				return repository.Migrate(ctx, pool, command)
			},
		})
	}
	return cmd
}
