package main

import (
	"github.com/gin-gonic/gin"

	"github.com/neighborly/helpdesk/internal/middleware"
	"github.com/neighborly/helpdesk/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, s *appServices) {
	// Middleware
	r.Use(middleware.RequestID())
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.Use(middleware.CORS())

	// Health check
	r.GET("/health", s.healthHandler.CheckHealth)

	// Rate limiter for the public auth routes
	authLimiter := middleware.NewRateLimiter(s.cfg.RateLimit.RPS, s.cfg.RateLimit.Burst)

	// Public routes
	public := r.Group("/api")
	{
		auth := public.Group("/auth")
		auth.Use(authLimiter.Middleware())
		{
			auth.POST("/register", s.authHandler.Register)
			auth.POST("/login", s.authHandler.Login)
			auth.POST("/refresh", s.authHandler.Refresh)
		}

		public.GET("/requests", s.requestHandler.List)
		public.GET("/requests/:id", s.requestHandler.GetByID)
		public.GET("/requests/:id/assignments", s.requestHandler.ListAssignments)
		public.GET("/reviews/requests/:id", s.reviewHandler.ListForRequest)
		public.GET("/reviews/volunteers/:id", s.reviewHandler.ListForVolunteer)
		public.GET("/community/members", s.communityHandler.ListMembers)
		public.GET("/community/members/:id", s.communityHandler.GetMember)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthRequired())
	protected.Use(middleware.AuditLog())
	{
		protected.GET("/auth/me", s.authHandler.GetCurrentUser)
		protected.POST("/auth/logout", s.authHandler.Logout)

		protected.POST("/requests", s.requestHandler.Create)
		protected.PUT("/requests/:id", s.requestHandler.Update)
		protected.DELETE("/requests/:id", s.requestHandler.Delete)
		protected.PUT("/requests/:id/cancel", s.requestHandler.Cancel)
		protected.PUT("/requests/:id/accept", s.requestHandler.Accept)
		protected.PUT("/requests/:id/complete", s.requestHandler.Complete)
		protected.GET("/requests/mine", s.requestHandler.ListMine)
		protected.GET("/assignments/mine", s.requestHandler.ListMyAssignments)

		protected.POST("/reviews/requests/:id", s.reviewHandler.Submit)

		protected.GET("/audit-logs", s.auditLogHandler.List)
	}
}
