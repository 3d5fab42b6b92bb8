// Package app wires configuration, storage, services, and transport into a
// running HTTP server.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/stallbook/stallbook-backend/internal/adapter/postgres"
	animalrepo "github.com/stallbook/stallbook-backend/internal/adapter/postgres/animal"
	badgerepo "github.com/stallbook/stallbook-backend/internal/adapter/postgres/badge"
	goalrepo "github.com/stallbook/stallbook-backend/internal/adapter/postgres/goal"
	milestonerepo "github.com/stallbook/stallbook-backend/internal/adapter/postgres/milestone"
	preferencerepo "github.com/stallbook/stallbook-backend/internal/adapter/postgres/preference"
	sharedaccessrepo "github.com/stallbook/stallbook-backend/internal/adapter/postgres/sharedaccess"
	userrepo "github.com/stallbook/stallbook-backend/internal/adapter/postgres/user"
	"github.com/stallbook/stallbook-backend/internal/auth"
	"github.com/stallbook/stallbook-backend/internal/config"
	animalsvc "github.com/stallbook/stallbook-backend/internal/service/animal"
	badgesvc "github.com/stallbook/stallbook-backend/internal/service/badge"
	goalsvc "github.com/stallbook/stallbook-backend/internal/service/goal"
	milestonesvc "github.com/stallbook/stallbook-backend/internal/service/milestone"
	preferencesvc "github.com/stallbook/stallbook-backend/internal/service/preference"
	sharingsvc "github.com/stallbook/stallbook-backend/internal/service/sharing"
	"github.com/stallbook/stallbook-backend/internal/transport/middleware"
	"github.com/stallbook/stallbook-backend/internal/transport/rest"
	"github.com/stallbook/stallbook-backend/migrations"
)

// Run is the application entry point. It loads configuration, applies
// migrations, builds the service graph, and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := runMigrations(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	animals := animalrepo.New(pool)
	goals := goalrepo.New(pool)
	milestones := milestonerepo.New(pool)
	badges := badgerepo.New(pool)
	invitations := sharedaccessrepo.New(pool)
	preferences := preferencerepo.New(pool)
	users := userrepo.New(pool)

	sharing := sharingsvc.NewService(logger, invitations)
	badgeService := badgesvc.NewService(logger, cfg.Badges, badges, goals, milestones, animals, sharing)
	milestoneService := milestonesvc.NewService(logger, milestones, animals, sharing, badgeService)
	goalService := goalsvc.NewService(logger, goals, animals, sharing, milestoneService, badgeService, txManager)
	animalService := animalsvc.NewService(logger, animals, sharing)
	preferenceService := preferencesvc.NewService(logger, cfg.Dashboard, preferences)

	verifier := auth.NewVerifier(cfg.Auth)

	router := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
		Session:     rest.NewSessionHandler(users, sharing, logger),
		Animals:     rest.NewAnimalHandler(animalService, logger),
		Goals:       rest.NewGoalHandler(goalService, logger),
		Milestones:  rest.NewMilestoneHandler(milestoneService, logger),
		Badges:      rest.NewBadgeHandler(badgeService, logger),
		Sharing:     rest.NewSharingHandler(sharing, logger),
		Preferences: rest.NewPreferenceHandler(preferenceService, logger),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
		middleware.Auth(verifier),
	)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

// runMigrations applies the embedded goose migrations. Goose requires
// database/sql, so this opens a short-lived connection separate from the
// pgx pool.
func runMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	migrateCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	if _, err := provider.Up(migrateCtx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
