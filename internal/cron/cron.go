package cron

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

const cleanupInterval = 24 * time.Hour

// LogCleaner removes activity logs older than a number of days.
type LogCleaner interface {
	CleanupOldLogs(days int) (int64, error)
}

// InvitationPurger removes invitations past their expiry.
type InvitationPurger interface {
	PurgeExpired() (int64, error)
}

// StartCleanupTask runs the retention jobs once at startup and then every
// 24 hours until ctx is cancelled.
func StartCleanupTask(ctx context.Context, logs LogCleaner, invitations InvitationPurger, retentionDays int) {
	go func() {
		log.Info().Int("retention_days", retentionDays).Msg("starting background cleanup task")
		RunCleanup(logs, invitations, retentionDays)

		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				RunCleanup(logs, invitations, retentionDays)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// RunCleanup performs one pass. Failures are logged and never stop the task.
func RunCleanup(logs LogCleaner, invitations InvitationPurger, retentionDays int) {
	if retentionDays > 0 {
		if n, err := logs.CleanupOldLogs(retentionDays); err != nil {
			log.Error().Err(err).Msg("failed to cleanup old activity logs")
		} else {
			log.Info().Int64("deleted", n).Msg("activity log cleanup completed")
		}
	}

	if n, err := invitations.PurgeExpired(); err != nil {
		log.Error().Err(err).Msg("failed to purge expired invitations")
	} else if n > 0 {
		log.Info().Int64("deleted", n).Msg("expired invitations purged")
	}
}
