package services

import (
	"github.com/robfig/cron/v3"

	"github.com/neighborly/helpdesk/pkg/logger"
)

// StartTokenCleanupScheduler purges dead refresh tokens nightly. Returns
// the scheduler so the caller can stop it on shutdown.
func StartTokenCleanupScheduler(authService *AuthService) *cron.Cron {
	scheduler := cron.New()

	_, err := scheduler.AddFunc("30 3 * * *", func() {
		deleted, err := authService.CleanupExpiredTokens()
		if err != nil {
			logger.Error().Err(err).Msg("refresh token cleanup failed")
			return
		}
		if deleted > 0 {
			logger.Infof("cleaned up %d expired refresh tokens", deleted)
		}
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to schedule refresh token cleanup")
		return scheduler
	}

	scheduler.Start()
	logger.Info().Msg("refresh token cleanup scheduled at 03:30 daily")
	return scheduler
}
