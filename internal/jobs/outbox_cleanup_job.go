package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type outboxPurger interface {
	Purge(ctx context.Context, cmd commands.PurgeOutboxCommand) (int64, error)
}

// OutboxCleanupJob deletes dispatched outbox messages once they are older
// than the retention period. Runs every hour.
type OutboxCleanupJob struct {
	handler   outboxPurger
	retention time.Duration
	now       func() time.Time
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOutboxCleanupJob(handler outboxPurger, retention time.Duration, logger *slog.Logger) *OutboxCleanupJob {
	return &OutboxCleanupJob{
		handler:   handler,
		retention: retention,
		now:       time.Now,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_cleanup_job"),
	}
}

func (j *OutboxCleanupJob) Start() error {
	if _, err := j.cron.AddFunc("0 0 * * * *", func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox cleanup job started", "retention", j.retention.String())
	return nil
}

func (j *OutboxCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox cleanup job stopped")
}

func (j *OutboxCleanupJob) run(ctx context.Context) {
	cmd, err := commands.NewPurgeOutboxCommand(j.now().Add(-j.retention))
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox cleanup misconfigured", "error", err)
		return
	}

	removed, err := j.handler.Purge(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox cleanup failed", "error", err)
		return
	}
	if removed > 0 {
		j.logger.InfoContext(ctx, "Outbox cleaned up", "removed", removed)
	}
}
