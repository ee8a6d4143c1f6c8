// Command sitectl performs operator tasks that are not exposed over HTTP:
// schema migrations, project seeding and newsletter deactivation.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/portfolio-site/backend/internal/config"
	"github.com/portfolio-site/backend/internal/logging"
	"github.com/portfolio-site/backend/internal/repository"
	"github.com/spf13/cobra"
)

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	DatabaseURL string
	Verbose     bool
}

func main() {
	_ = godotenv.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "sitectl",
		Short:         "Operator tooling for the portfolio site backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			logging.Setup(cmd.ErrOrStderr(), level)
			if opts.DatabaseURL != "" {
				return nil
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.DatabaseURL = cfg.DatabaseURL
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.DatabaseURL, "database-url", "", "PostgreSQL connection string (default: $DATABASE_URL)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newMigrateCommand(opts),
		newProjectsCommand(opts),
		newNewsletterCommand(opts),
	)
	return cmd
}

func (o *rootOptions) openPool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := repository.NewPool(ctx, o.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return pool, nil
}
