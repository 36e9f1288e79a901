// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
//  1. OutboxDispatchJob - publishes committed domain events and payout
//     instructions from the outbox to Kafka (OUTBOX_SCHEDULE, default every
//     two seconds). Overlapping runs are skipped.
//  2. OutboxCleanupJob - hourly, deletes messages dispatched longer ago than
//     OUTBOX_RETENTION.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(outboxHandler, settings, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed batch is logged and retried on the next tick; its messages stay
// pending. Failed job starts stop any already running jobs.
package jobs
