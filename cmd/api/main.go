package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/skyline-aviation/crew-staffing-api/internal/adapters/httpapi"
	memaircraftrepo "github.com/skyline-aviation/crew-staffing-api/internal/adapters/memory/aircraftrepo"
	memcrewrepo "github.com/skyline-aviation/crew-staffing-api/internal/adapters/memory/crewrepo"
	memqualificationrepo "github.com/skyline-aviation/crew-staffing-api/internal/adapters/memory/qualificationrepo"
	postgres "github.com/skyline-aviation/crew-staffing-api/internal/adapters/postgres"
	pgaircraftrepo "github.com/skyline-aviation/crew-staffing-api/internal/adapters/postgres/aircraftrepo"
	pgcrewrepo "github.com/skyline-aviation/crew-staffing-api/internal/adapters/postgres/crewrepo"
	pgqualificationrepo "github.com/skyline-aviation/crew-staffing-api/internal/adapters/postgres/qualificationrepo"
	"github.com/skyline-aviation/crew-staffing-api/internal/adapters/seed"
	"github.com/skyline-aviation/crew-staffing-api/internal/app/staffing"
	platformclock "github.com/skyline-aviation/crew-staffing-api/internal/platform/clock"
	"github.com/skyline-aviation/crew-staffing-api/internal/platform/config"
	"github.com/skyline-aviation/crew-staffing-api/internal/platform/logging"
	aircraftrepoport "github.com/skyline-aviation/crew-staffing-api/internal/ports/out/aircraftrepo"
	crewrepoport "github.com/skyline-aviation/crew-staffing-api/internal/ports/out/crewrepo"
	qualificationrepoport "github.com/skyline-aviation/crew-staffing-api/internal/ports/out/qualificationrepo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid logging config: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("api exited", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		aircraftRepo      aircraftrepoport.Repository
		crewRepo          crewrepoport.Repository
		qualificationRepo qualificationrepoport.Repository
	)

	switch cfg.StorageBackend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, postgres.PoolOptions{MaxConns: cfg.DBMaxConns})
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		defer pool.Close()

		if cfg.MigrateOnStart {
			if err := postgres.Migrate(ctx, pool); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("schema migrated")
		}

		aircraftRepo = pgaircraftrepo.NewRepo(pool)
		crewRepo = pgcrewrepo.NewRepo(pool)
		qualificationRepo = pgqualificationrepo.NewRepo(pool)
	default:
		crew := memcrewrepo.NewRepo()
		aircraftRepo = memaircraftrepo.NewRepo()
		crewRepo = crew
		qualificationRepo = memqualificationrepo.NewRepo(crew)
	}

	if cfg.SeedFile != "" {
		res, err := seed.LoadFile(ctx, cfg.SeedFile, seed.Stores{
			Aircraft:       aircraftRepo,
			Crew:           crewRepo,
			Qualifications: qualificationRepo,
		})
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("feeds seeded",
			zap.String("file", cfg.SeedFile),
			zap.Int("aircraft", res.Aircraft),
			zap.Int("crew_members", res.CrewMembers),
			zap.Int("qualifications", res.Qualifications),
			zap.Int("skipped", res.Skipped),
		)
	}

	svc := staffing.NewService(aircraftRepo, crewRepo, qualificationRepo, platformclock.NewSystemClock(), logger.Named("staffing"))
	handler := httpapi.NewRouterWithOptions(
		httpapi.NewServer(svc, logger.Named("http")),
		httpapi.RouterOptions{Logger: logger.Named("access")},
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("api listening", zap.String("addr", srv.Addr), zap.String("storage", cfg.StorageBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
