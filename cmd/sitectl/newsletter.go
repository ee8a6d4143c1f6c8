package main

import (
	"errors"
	"fmt"

	"github.com/portfolio-site/backend/internal/repository"
	"github.com/portfolio-site/backend/internal/service"
	"github.com/spf13/cobra"
)

func newNewsletterCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "newsletter",
		Short: "Manage newsletter subscriptions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "deactivate <email>",
		Short: "Mark a subscription inactive; subscribing again reactivates it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := opts.openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			svc := service.NewNewsletterService(repository.NewPgNewsletterRepository(pool))
			err = svc.Deactivate(ctx, args[0])
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no subscription for %q", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deactivated %s\n", args[0])
			return nil
		},
	})
	return cmd
}
