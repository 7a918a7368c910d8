package main

import (
	"github.com/robfig/cron/v3"

	"github.com/neighborly/helpdesk/internal/config"
	"github.com/neighborly/helpdesk/internal/handlers"
	"github.com/neighborly/helpdesk/internal/models"
	"github.com/neighborly/helpdesk/internal/services"
	"github.com/neighborly/helpdesk/internal/utils"
	"github.com/neighborly/helpdesk/pkg/logger"
)

// appServices holds all initialized handlers and schedulers needed by the application.
type appServices struct {
	cfg              *config.Config
	authHandler      *handlers.AuthHandler
	requestHandler   *handlers.RequestHandler
	reviewHandler    *handlers.ReviewHandler
	communityHandler *handlers.CommunityHandler
	auditLogHandler  *handlers.AuditLogHandler
	healthHandler    *handlers.HealthHandler
	tokenCleanup     *cron.Cron
}

// bootstrap initializes all application dependencies: database, services, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.SeedDemoData(); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed demo data")
	}

	db := models.GetDB()

	services.InitAuditLogger(db)
	services.StartAuditCleanupScheduler(db, cfg.Log.RetentionDays)

	authService := services.NewAuthService(db, &cfg.JWT)
	tokenCleanup := services.StartTokenCleanupScheduler(authService)

	return &appServices{
		cfg:              cfg,
		authHandler:      handlers.NewAuthHandler(db, &cfg.JWT),
		requestHandler:   handlers.NewRequestHandler(db),
		reviewHandler:    handlers.NewReviewHandler(db),
		communityHandler: handlers.NewCommunityHandler(db),
		auditLogHandler:  handlers.NewAuditLogHandler(db),
		healthHandler:    handlers.NewHealthHandler(),
		tokenCleanup:     tokenCleanup,
	}
}

// shutdown gracefully stops background schedulers.
func (s *appServices) shutdown() {
	if s.tokenCleanup != nil {
		s.tokenCleanup.Stop()
	}
	logger.Info().Msg("All schedulers stopped")
}
