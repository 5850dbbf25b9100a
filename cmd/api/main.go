package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/release-notes-service/internal/api/http"
	"github.com/spec-kit/release-notes-service/internal/api/http/handlers"
	"github.com/spec-kit/release-notes-service/internal/auth"
	"github.com/spec-kit/release-notes-service/internal/config"
	"github.com/spec-kit/release-notes-service/internal/events"
	"github.com/spec-kit/release-notes-service/internal/observability"
	"github.com/spec-kit/release-notes-service/internal/persistence"
	"github.com/spec-kit/release-notes-service/internal/repository"
	"github.com/spec-kit/release-notes-service/internal/service"
	"github.com/spec-kit/release-notes-service/internal/worker"
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

	metrics := observability.NewMetrics()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	releaseRepo := repository.NewReleaseRepository(pool)
	applicationRepo := repository.NewApplicationRepository(pool)
	contactRepo := repository.NewRecruiterContactRepository(pool)
	bannerRepo := repository.NewBannerRepository(pool)
	messageRepo := repository.NewContactMessageRepository(pool)
	engagementRepo := repository.NewEngagementRepository(redis.Client)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, userRepo)
	releaseService := service.NewReleaseService(releaseRepo, dispatcher)
	hiringService := service.NewHiringService(service.HiringDependencies{
		ApplicationRepo: applicationRepo,
		ContactRepo:     contactRepo,
		BannerRepo:      bannerRepo,
	})
	portfolioService := service.NewPortfolioService(engagementRepo, messageRepo, dispatcher, logger)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	adminGate := auth.NewAdminKeyGate(cfg.Auth.AdminKey)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Releases:       handlers.NewReleasesHandler(releaseService),
		PublicReleases: handlers.NewPublicReleasesHandler(releaseService),
		Hiring:         handlers.NewHiringHandler(hiringService),
		Portfolio:      handlers.NewPortfolioHandler(portfolioService),
		AuthMiddleware: authMiddleware,
		AdminGate:      adminGate,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
