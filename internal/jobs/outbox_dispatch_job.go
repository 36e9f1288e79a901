package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type outboxDispatcher interface {
	Dispatch(ctx context.Context, cmd commands.DispatchOutboxCommand) (int, error)
}

// OutboxDispatchJob publishes pending outbox messages on a schedule. Each run
// drains the outbox batch by batch until it is empty or a batch fails.
type OutboxDispatchJob struct {
	handler   outboxDispatcher
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOutboxDispatchJob(handler outboxDispatcher, schedule string, batchSize int, logger *slog.Logger) *OutboxDispatchJob {
	return &OutboxDispatchJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_dispatch_job"),
	}
}

func (j *OutboxDispatchJob) Start() error {
	cmd, err := commands.NewDispatchOutboxCommand(j.batchSize)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.schedule, func() { j.run(context.Background(), cmd) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox dispatch job started", "schedule", j.schedule)
	return nil
}

func (j *OutboxDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox dispatch job stopped")
}

func (j *OutboxDispatchJob) run(ctx context.Context, cmd commands.DispatchOutboxCommand) int {
	total := 0
	for {
		sent, err := j.handler.Dispatch(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Outbox dispatch failed", "error", err, "dispatched", total)
			return total
		}
		total += sent
		if sent < cmd.BatchSize() {
			break
		}
	}

	if total > 0 {
		j.logger.DebugContext(ctx, "Outbox dispatched", "messages", total)
	}
	return total
}
