package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/staff-briefing/internal/api/http"
	"github.com/spec-kit/staff-briefing/internal/api/http/handlers"
	"github.com/spec-kit/staff-briefing/internal/config"
	"github.com/spec-kit/staff-briefing/internal/events"
	"github.com/spec-kit/staff-briefing/internal/observability"
	"github.com/spec-kit/staff-briefing/internal/persistence"
	"github.com/spec-kit/staff-briefing/internal/repository"
	"github.com/spec-kit/staff-briefing/internal/roster"
	"github.com/spec-kit/staff-briefing/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if pg.Enabled() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	rd := persistence.NewRedis(cfg.Redis, logger)
	defer rd.Close()

	var attendanceRepo repository.AttendanceRepository
	if pg.Enabled() {
		attendanceRepo = repository.NewAttendanceRepository(pg.PoolHandle())
	}

	loader, err := rosterLoader(cfg, attendanceRepo, rd, logger)
	if err != nil {
		logger.Fatal("no roster source", zap.Error(err))
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	service.NewNotificationService(dispatcher, logger, cfg.Notification).RegisterHandlers()

	briefingService := service.NewBriefingService(cfg.Rules, service.BriefingDependencies{
		Loader:     loader,
		Dispatcher: dispatcher,
		Logger:     logger,
		Metrics:    metrics,
	})

	dependencies := map[string]handlers.Pinger{}
	routes := httptransport.RouteConfig{
		Briefing: handlers.NewBriefingHandler(briefingService),
		Metrics:  handlers.NewMetricsHandler(metrics),
	}
	if attendanceRepo != nil {
		dependencies["postgres"] = pg
		routes.Roster = handlers.NewRosterHandler(service.NewRosterService(service.RosterDependencies{
			AttendanceRepo: attendanceRepo,
			Dispatcher:     dispatcher,
			Logger:         logger,
		}))
	}
	if rd != nil {
		dependencies["redis"] = rd
	}
	routes.Health = handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, dependencies)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, routes)

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// rosterLoader prefers a configured export over the imported store. Remote
// exports are cached in Redis when it is available.
func rosterLoader(cfg *config.Config, repo repository.AttendanceRepository, rd *persistence.Redis, logger *zap.Logger) (roster.Loader, error) {
	src, err := roster.NewSource(cfg.Roster.CSVURL, cfg.Roster.CSVPath, cfg.Roster.FetchTimeout())
	switch {
	case err == nil:
		if cfg.Roster.CSVURL != "" && rd != nil {
			src = roster.NewCachedSource(src, rd, "roster:"+cfg.Roster.CSVURL, cfg.Roster.CacheTTL(), logger)
		}
		return roster.SourceLoader{Source: src}, nil
	case errors.Is(err, roster.ErrSourceNotConfigured) && repo != nil:
		logger.Info("serving imported roster from postgres")
		return service.RepositoryLoader{Repo: repo}, nil
	default:
		return nil, err
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
