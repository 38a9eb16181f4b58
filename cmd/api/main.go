package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mitrasinergi/sales-api/docs"
	"github.com/mitrasinergi/sales-api/internal/auth"
	"github.com/mitrasinergi/sales-api/internal/config"
	"github.com/mitrasinergi/sales-api/internal/database"
	"github.com/mitrasinergi/sales-api/internal/http/handler"
	"github.com/mitrasinergi/sales-api/internal/http/middleware"
	"github.com/mitrasinergi/sales-api/internal/http/router"
	"github.com/mitrasinergi/sales-api/internal/insight"
	"github.com/mitrasinergi/sales-api/internal/jobs"
	"github.com/mitrasinergi/sales-api/internal/logger"
	"github.com/mitrasinergi/sales-api/internal/repository"
	"github.com/mitrasinergi/sales-api/internal/service"
	"go.uber.org/zap"
)

// @title Sales Tracker API
// @version 1.0
// @description Sales tracking dashboard backend for project income, targets and rankings

// @contact.name API Support
// @contact.email support@mitrasinergi.co.id

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description API Key for system operations

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)

	// Configure Swagger host based on environment
	switch cfg.App.Environment {
	case "staging":
		docs.SwaggerInfo.Host = "sales-api-staging.mitrasinergi.co.id"
	case "production":
		docs.SwaggerInfo.Host = "sales-api.mitrasinergi.co.id"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.App.Port)
	}

	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Narrative commentary service is optional; nil client means the
	// dashboard falls back to locally generated summaries
	insightClient := insight.NewClient(&cfg.Insight, log)

	// Repositories
	projectRepo := repository.NewProjectRepository(db)
	targetRepo := repository.NewTargetRepository(db)
	pidSequenceRepo := repository.NewPIDSequenceRepository(db)

	// Services
	pidService := service.NewPIDService(pidSequenceRepo, projectRepo, log)
	projectService := service.NewProjectService(projectRepo, pidService, log)
	targetService := service.NewTargetService(targetRepo, log)
	dashboardService := service.NewDashboardService(projectRepo, targetRepo, log)
	insightService := service.NewInsightService(dashboardService, insightClient, log)
	importService := service.NewImportService(projectRepo, pidService, &cfg.Import, log)
	exportService := service.NewExportService(projectRepo, log)

	// Middleware
	authMiddleware := auth.NewMiddleware(cfg, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Handlers
	projectHandler := handler.NewProjectHandler(projectService, importService, exportService, &cfg.Import, log)
	targetHandler := handler.NewTargetHandler(targetService, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, insightService, log)

	rt := router.NewRouter(
		cfg,
		log,
		db,
		authMiddleware,
		rateLimiter,
		projectHandler,
		targetHandler,
		dashboardHandler,
	)

	// Background jobs
	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		scheduler = jobs.NewScheduler(log)
		if err := jobs.RegisterPIDSyncJob(scheduler, pidService, &cfg.Jobs, log); err != nil {
			log.Error("Failed to register PID sync job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started",
				zap.Strings("jobs", scheduler.GetJobNames()),
				zap.String("pid_sync_cron", cfg.Jobs.PIDSyncCron),
				zap.Duration("pid_sync_timeout", cfg.Jobs.PIDSyncTimeoutDuration()),
			)
		}
	} else {
		log.Info("Background jobs disabled")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
