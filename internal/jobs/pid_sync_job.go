package jobs

import (
	"context"
	"time"

	"github.com/mitrasinergi/sales-api/internal/config"
	"github.com/mitrasinergi/sales-api/internal/service"
	"go.uber.org/zap"
)

const pidSyncJobName = "pid_sequence_sync"

// RegisterPIDSyncJob schedules periodic reconciliation of the PID sequence
// counter against the highest code actually stored. Manually entered codes
// can run ahead of the counter; the sync job raises it so generated codes
// never collide.
func RegisterPIDSyncJob(
	scheduler *Scheduler,
	pidService *service.PIDService,
	cfg *config.JobsConfig,
	logger *zap.Logger,
) error {
	return scheduler.AddJob(pidSyncJobName, cfg.PIDSyncCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.PIDSyncTimeoutDuration())
		defer cancel()

		year := time.Now().UTC().Year()
		if err := pidService.SyncSequence(ctx, year); err != nil {
			logger.Error("pid sequence sync failed",
				zap.Int("year", year),
				zap.Error(err))
			return
		}

		// Early January still sees imports dated the previous year
		if time.Now().UTC().Month() == time.January {
			if err := pidService.SyncSequence(ctx, year-1); err != nil {
				logger.Error("pid sequence sync failed",
					zap.Int("year", year-1),
					zap.Error(err))
			}
		}
	})
}
