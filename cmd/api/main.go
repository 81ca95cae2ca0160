package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/freelanceshield/api/internal/api/handlers"
	"github.com/freelanceshield/api/internal/api/router"
	"github.com/freelanceshield/api/internal/config"
	"github.com/freelanceshield/api/internal/llm"
	"github.com/freelanceshield/api/internal/pdf"
	"github.com/freelanceshield/api/internal/pkg/logger"
	"github.com/freelanceshield/api/internal/pkg/validator"
	"github.com/freelanceshield/api/internal/repository/postgres"
	"github.com/freelanceshield/api/internal/services"
	"github.com/freelanceshield/api/migrations"
)

// @title FreelanceShield API
// @version 1.0
// @description Contract review and risk analysis for freelancers.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		OutputPath: cfg.Logging.OutputPath,
	})

	db, err := postgres.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db, migrations.GetFS()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Info("Database ready")

	analyzer, err := llm.NewAnalyzer(cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize analyzer: %v", err)
	}

	var extractor pdf.Extractor
	if cfg.PDF.ServiceURL != "" {
		extractor = pdf.NewRemoteExtractor(cfg.PDF.ServiceURL)
		log.Infof("Using remote PDF extraction at %s", cfg.PDF.ServiceURL)
	} else {
		extractor = pdf.NewLocalExtractor()
	}

	notifier := services.NewEmailNotifier(cfg.Email, cfg.Server.AppURL, log)
	defer notifier.Close()

	// Repositories
	profileRepo := postgres.NewProfileRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	templateRepo := postgres.NewTemplateRepository(db)

	// Services. Billing is built first so the profile service can
	// cancel subscriptions on account deletion.
	billingSvc := services.NewBillingService(profileRepo, notifier, cfg.Stripe, cfg.Server.AppURL, log)
	profileSvc := services.NewProfileService(profileRepo, billingSvc, notifier, cfg.Auth, log)
	reviewSvc := services.NewReviewService(reviewRepo, profileRepo, analyzer, extractor, notifier, cfg.Plans, cfg.PDF.MaxFileSize, log)
	templateSvc := services.NewTemplateService(templateRepo, log)
	letterSvc := services.NewLetterService(profileRepo, analyzer, cfg.Plans, log)
	adminSvc := services.NewAdminService(profileRepo, reviewRepo, log)

	if err := templateSvc.SeedDefaults(context.Background()); err != nil {
		log.Fatalf("Failed to seed templates: %v", err)
	}

	val := validator.New()

	h := &router.Handlers{
		Health:   handlers.NewHealthHandler(db.DB, log),
		Auth:     handlers.NewAuthHandler(profileSvc, cfg, log, val),
		Profile:  handlers.NewProfileHandler(profileSvc, log),
		Review:   handlers.NewReviewHandler(reviewSvc, cfg.PDF.MaxFileSize, log),
		Template: handlers.NewTemplateHandler(templateSvc, profileSvc, pdf.NewRenderer(), log),
		Billing:  handlers.NewBillingHandler(billingSvc, log),
		Letter:   handlers.NewLetterHandler(letterSvc, log),
		Admin:    handlers.NewAdminHandler(adminSvc, profileSvc, templateSvc, log),
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, log, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Infof("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Graceful shutdown failed: %v", err)
	}
	log.Info("Server stopped")
}
