package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/portfolio-site/backend/internal/config"
	"github.com/portfolio-site/backend/internal/handler"
	"github.com/portfolio-site/backend/internal/logging"
	"github.com/portfolio-site/backend/internal/repository"
	"github.com/portfolio-site/backend/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Setup(os.Stdout, slog.LevelInfo)
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(os.Stdout, cfg.Level())

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	if cfg.MigrateOnStart {
		if err := repository.Migrate(ctx, pool, "up"); err != nil {
			logging.Fatal("migration failed", "error", err)
		}
	}

	contactService := service.NewContactService(repository.NewPgContactRepository(pool))
	newsletterService := service.NewNewsletterService(repository.NewPgNewsletterRepository(pool))
	projectService := service.NewProjectService(repository.NewPgProjectRepository(pool))

	routes := handler.Routes(handler.Handlers{
		Base:       handler.New(pool, cfg.FrontendURL),
		Contact:    handler.NewContactHandler(contactService),
		Newsletter: handler.NewNewsletterHandler(newsletterService),
		Project:    handler.NewProjectHandler(projectService),
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
